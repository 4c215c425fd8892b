package marketplace

// Regional Selling Partner and Advertising API base URLs.
const (
	EndpointNA = "https://sellingpartnerapi-na.amazon.com"
	EndpointEU = "https://sellingpartnerapi-eu.amazon.com"

	AdsEndpointNA = "https://advertising-api.amazon.com"
	AdsEndpointEU = "https://advertising-api-eu.amazon.com"
)

// Defaults holds the well-known identifiers for each supported marketplace.
// Credentials and seller IDs are not included; they come from configuration.
var Defaults = map[Code]Config{
	US: {
		Code: US, Name: "United States", MarketplaceID: "ATVPDKIKX0DER", Currency: "USD",
		Endpoint: EndpointNA, AWSRegion: "us-east-1", AdsEndpoint: AdsEndpointNA,
	},
	CA: {
		Code: CA, Name: "Canada", MarketplaceID: "A2EUQ1WTGCTBG2", Currency: "CAD",
		Endpoint: EndpointNA, AWSRegion: "us-east-1", AdsEndpoint: AdsEndpointNA,
	},
	UK: {
		Code: UK, Name: "United Kingdom", MarketplaceID: "A1F83G8C2ARO7P", Currency: "GBP",
		Endpoint: EndpointEU, AWSRegion: "eu-west-1", AdsEndpoint: AdsEndpointEU,
	},
	AE: {
		Code: AE, Name: "United Arab Emirates", MarketplaceID: "A2VIGQ35RCS4UG", Currency: "AED",
		Endpoint: EndpointEU, AWSRegion: "eu-west-1", AdsEndpoint: AdsEndpointEU,
	},
	SA: {
		Code: SA, Name: "Saudi Arabia", MarketplaceID: "A17E79C6D8DWNP", Currency: "SAR",
		Endpoint: EndpointEU, AWSRegion: "eu-west-1", AdsEndpoint: AdsEndpointEU,
	},
}

// WithDefaults fills empty fields of c from Defaults[c.Code].
func WithDefaults(c Config) Config {
	d, ok := Defaults[ParseCode(string(c.Code))]
	if !ok {
		return c
	}
	c.Code = d.Code
	if c.Name == "" {
		c.Name = d.Name
	}
	if c.MarketplaceID == "" {
		c.MarketplaceID = d.MarketplaceID
	}
	if c.Currency == "" {
		c.Currency = d.Currency
	}
	if c.Endpoint == "" {
		c.Endpoint = d.Endpoint
	}
	if c.AWSRegion == "" {
		c.AWSRegion = d.AWSRegion
	}
	if c.AdsEndpoint == "" {
		c.AdsEndpoint = d.AdsEndpoint
	}
	return c
}
