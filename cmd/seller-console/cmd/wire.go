package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/api/middleware"
	"github.com/jadehome/seller-console/internal/config"
	"github.com/jadehome/seller-console/internal/marketplace"
	"github.com/jadehome/seller-console/internal/notify"
	"github.com/jadehome/seller-console/internal/scheduler"
	"github.com/jadehome/seller-console/internal/tokencache"
	"github.com/jadehome/seller-console/pkg/logger"
)

// amazonStack is everything needed to talk to Amazon for the configured
// marketplaces.
type amazonStack struct {
	registry  *marketplace.Registry
	cache     tokencache.Cache
	spTokens  *amazon.TokenManager
	adsTokens *amazon.TokenManager // nil when ads credentials are absent
	client    *amazon.Client
	closers   []func()
}

func (s *amazonStack) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logger.New(cfg.Logging.Level, cfg.Logging.Format,
		logger.WithContextAttrs(func(ctx context.Context) []slog.Attr {
			if id := middleware.RequestID(ctx); id != "" {
				return []slog.Attr{slog.String("request_id", id)}
			}
			return nil
		}),
	)
}

func newAmazonStack(ctx context.Context, cfg *config.Config, log *slog.Logger) (*amazonStack, error) {
	registry, err := cfg.Registry()
	if err != nil {
		return nil, err
	}

	s := &amazonStack{registry: registry}
	cache, closeCache, err := newTokenCache(ctx, cfg)
	if err != nil {
		return nil, err
	}
	s.cache = cache
	s.closers = append(s.closers, closeCache)

	tokenHTTP := &http.Client{Timeout: cfg.Amazon.Timeout}
	tokenOpts := []amazon.TokenOption{
		amazon.WithTokenURL(cfg.Amazon.TokenURL),
		amazon.WithTokenHTTPClient(tokenHTTP),
		amazon.WithTokenLogger(log),
	}
	s.spTokens = amazon.NewTokenManager(amazon.ScopeSP, registry, cache, amazon.ClientCredentials{
		ClientID:     cfg.Amazon.LWAClientID,
		ClientSecret: cfg.Amazon.LWAClientSecret,
	}, tokenOpts...)

	awsCreds, err := newAWSCredentials(ctx, cfg.Amazon.AWS)
	if err != nil {
		s.Close()
		return nil, err
	}

	clientOpts := []amazon.ClientOption{
		amazon.WithAWSCredentials(awsCreds),
		amazon.WithProfileCache(cache),
		amazon.WithLimiters(amazon.NewLimiters(registry.Codes(), cfg.Amazon.RateLimit.Limiter())),
		amazon.WithTimeout(cfg.Amazon.Timeout),
		amazon.WithUserAgent(cfg.Amazon.UserAgent),
		amazon.WithLogger(log),
	}
	if cfg.Amazon.AdsEnabled() {
		s.adsTokens = amazon.NewTokenManager(amazon.ScopeAds, registry, cache, amazon.ClientCredentials{
			ClientID:     cfg.Amazon.AdsClientID,
			ClientSecret: cfg.Amazon.AdsClientSecret,
		}, tokenOpts...)
		clientOpts = append(clientOpts, amazon.WithAdsTokens(s.adsTokens, cfg.Amazon.AdsClientID))
	}

	s.client = amazon.NewClient(registry, s.spTokens, clientOpts...)
	return s, nil
}

// warmupTargets pairs each token manager with the marketplaces that have a
// refresh token for its scope.
func (s *amazonStack) warmupTargets(cfg *config.Config) []scheduler.Target {
	targets := []scheduler.Target{{Source: s.spTokens, Codes: s.registry.Codes()}}
	if s.adsTokens == nil {
		return targets
	}

	var adsCodes []marketplace.Code
	for _, m := range cfg.Marketplaces {
		if m.AdsRefreshToken != "" {
			adsCodes = append(adsCodes, marketplace.ParseCode(m.Code))
		}
	}
	return append(targets, scheduler.Target{Source: s.adsTokens, Codes: adsCodes})
}

func newTokenCache(ctx context.Context, cfg *config.Config) (tokencache.Cache, func(), error) {
	tc := cfg.TokenCache
	switch tc.Backend {
	case config.CacheRedis:
		cli, err := tokencache.NewRedisClient(ctx, tokencache.RedisOptions{
			Addr:     tc.Redis.Addr,
			Username: tc.Redis.Username,
			Password: tc.Redis.Password,
			DB:       tc.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return tokencache.Prefixed(tokencache.NewRedis(cli), tc.Prefix), func() { _ = cli.Close() }, nil

	case config.CacheDynamoDB:
		cli, err := newDynamoClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		cache := tokencache.NewDynamoDB(tc.DynamoDB.Table, cli)
		if tc.DynamoDB.CreateTable {
			if err := cache.EnsureTable(ctx); err != nil {
				return nil, nil, err
			}
		}
		return tokencache.Prefixed(cache, tc.Prefix), func() {}, nil

	default:
		return tokencache.Prefixed(tokencache.NewMemory(), tc.Prefix), func() {}, nil
	}
}

func newDynamoClient(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	region := cfg.TokenCache.DynamoDB.Region
	if region == "" {
		region = cfg.Amazon.AWS.Region
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	endpoint := cfg.TokenCache.DynamoDB.Endpoint
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			// Local DynamoDB ignores credentials but the SDK still signs.
			o.BaseEndpoint = aws.String(endpoint)
			o.Credentials = credentials.NewStaticCredentialsProvider("local", "local", "")
		}
	}), nil
}

// newAWSCredentials returns the IAM credentials used for SigV4 signing:
// static keys when configured, otherwise the default chain, optionally
// exchanged for an assumed role.
func newAWSCredentials(ctx context.Context, c config.AWSConfig) (aws.CredentialsProvider, error) {
	var base aws.CredentialsProvider
	opts := []func(*awsconfig.LoadOptions) error{}
	if c.Region != "" {
		opts = append(opts, awsconfig.WithRegion(c.Region))
	}
	if c.AccessKeyID != "" {
		base = credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, "")
		opts = append(opts, awsconfig.WithCredentialsProvider(base))
	}

	if c.RoleARN == "" && base != nil {
		return base, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	if c.RoleARN == "" {
		return awsCfg.Credentials, nil
	}

	provider := stscreds.NewAssumeRoleProvider(sts.NewFromConfig(awsCfg), c.RoleARN,
		func(o *stscreds.AssumeRoleOptions) {
			o.RoleSessionName = "seller-console"
		})
	return aws.NewCredentialsCache(provider), nil
}

// newNotifier builds the warm-up alert sink from every enabled backend.
func newNotifier(ctx context.Context, cfg *config.Config, log *slog.Logger) (notify.Notifier, error) {
	var sinks notify.Multi

	if d := cfg.Notifications.Discord; d.Enabled {
		sinks = append(sinks, notify.NewDiscordNotifier(d.WebhookURL,
			notify.WithHTTPClient(&http.Client{Timeout: 10 * time.Second})))
	}

	if c := cfg.Notifications.SNS; c.Enabled {
		region := c.Region
		if region == "" {
			region = cfg.Amazon.AWS.Region
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
		if err != nil {
			return nil, fmt.Errorf("loading aws config for sns: %w", err)
		}
		cli := sns.NewFromConfig(awsCfg, func(o *sns.Options) {
			if c.Endpoint != "" {
				o.BaseEndpoint = aws.String(c.Endpoint)
				o.Credentials = credentials.NewStaticCredentialsProvider("test", "test", "")
			}
		})
		sinks = append(sinks, notify.NewSNSNotifier(cli, c.TopicARN))
	}

	switch len(sinks) {
	case 0:
		return notify.NewNoOpNotifier(log), nil
	case 1:
		return sinks[0], nil
	default:
		return sinks, nil
	}
}
