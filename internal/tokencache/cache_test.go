package tokencache_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbTypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadehome/seller-console/internal/tokencache"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClock() *clock {
	return &clock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

// exerciseCache runs the behaviour every backend must share.
func exerciseCache(t *testing.T, c tokencache.Cache, clk *clock) {
	t.Helper()
	ctx := context.Background()

	_, found, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "sp:token:US", "v1", time.Minute))
	val, found, err := c.Get(ctx, "sp:token:US")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v1", val)

	// Overwrite.
	require.NoError(t, c.Set(ctx, "sp:token:US", "v2", time.Minute))
	val, _, err = c.Get(ctx, "sp:token:US")
	require.NoError(t, err)
	assert.Equal(t, "v2", val)

	// Expiry.
	clk.Advance(61 * time.Second)
	_, found, err = c.Get(ctx, "sp:token:US")
	require.NoError(t, err)
	assert.False(t, found)

	// Delete.
	require.NoError(t, c.Set(ctx, "k", "v", time.Hour))
	require.NoError(t, c.Delete(ctx, "k"))
	_, found, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	assert.ErrorIs(t, c.Set(ctx, "k", "v", 0), tokencache.ErrInvalidTTL)
}

func TestMemory(t *testing.T) {
	t.Parallel()

	clk := newClock()
	m := tokencache.NewMemory(tokencache.WithMemoryNowFunc(clk.Now))
	exerciseCache(t, m, clk)
	assert.Equal(t, 0, m.Len())
}

func TestPrefixed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	inner := tokencache.NewMemory()
	c := tokencache.Prefixed(inner, tokencache.DefaultPrefix)

	require.NoError(t, c.Set(ctx, "sp:token:UK", "tok", time.Hour))

	val, found, err := inner.Get(ctx, "amazon:sp:token:UK")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "tok", val)

	_, found, err = inner.Get(ctx, "sp:token:UK")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Delete(ctx, "sp:token:UK"))
	assert.Equal(t, 0, inner.Len())
}

func TestPrefixed_EmptyPrefixReturnsInner(t *testing.T) {
	t.Parallel()

	inner := tokencache.NewMemory()
	assert.Same(t, tokencache.Cache(inner), tokencache.Prefixed(inner, ""))
}

// fakeDynamo is an in-memory stand-in for the DynamoDB client. It never
// evicts on its own, which mirrors DynamoDB's lazy TTL deletion.
type fakeDynamo struct {
	mu      sync.Mutex
	items   map[string]map[string]ddbTypes.AttributeValue
	created int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]ddbTypes.AttributeValue{}}
}

func pk(key map[string]ddbTypes.AttributeValue) string {
	return key["PK"].(*ddbTypes.AttributeValueMemberS).Value
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[pk(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[pk(in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, pk(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) CreateTable(_ context.Context, _ *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created++
	if f.created > 1 {
		return nil, &ddbTypes.ResourceInUseException{}
	}
	return &dynamodb.CreateTableOutput{}, nil
}

func TestDynamoDB(t *testing.T) {
	t.Parallel()

	clk := newClock()
	fake := newFakeDynamo()
	d := tokencache.NewDynamoDB("tokens", fake, tokencache.WithDynamoNowFunc(clk.Now))

	require.NoError(t, d.EnsureTable(context.Background()))
	require.NoError(t, d.EnsureTable(context.Background()), "existing table is not an error")

	exerciseCache(t, d, clk)
}
