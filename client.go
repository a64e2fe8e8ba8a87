package faraday

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ClientOptions configures the client handle returned by [NewClient].
// All fields are consumed opaquely: they are handed to the underlying
// transport unchanged.
type ClientOptions struct {
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
	ProxyHost string
	ProxyPort int
}

// WithRegion sets the service region.
func WithRegion(region string) func(*ClientOptions) {
	return func(o *ClientOptions) { o.Region = region }
}

// WithStaticCredentials sets a static access key pair.
func WithStaticCredentials(accessKey, secretKey string) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.AccessKey = accessKey
		o.SecretKey = secretKey
	}
}

// WithEndpoint overrides the service endpoint URL, e.g. for a local
// instance.
func WithEndpoint(endpoint string) func(*ClientOptions) {
	return func(o *ClientOptions) { o.Endpoint = endpoint }
}

// WithProxy routes requests through the given HTTP proxy.
func WithProxy(host string, port int) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.ProxyHost = host
		o.ProxyPort = port
	}
}

// NewClient constructs a dynamodb client handle. The handle satisfies
// every interface in this package; construct it once and thread it
// through each operation's Execute call. There is no process-wide
// cache: callers own the handle's lifetime and reuse.
func NewClient(ctx context.Context, opts ...func(*ClientOptions)) (*dynamodb.Client, error) {
	options := ClientOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	loaders := []func(*config.LoadOptions) error{}
	if options.Region != "" {
		loaders = append(loaders, config.WithRegion(options.Region))
	}
	if options.AccessKey != "" {
		loaders = append(loaders, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(options.AccessKey, options.SecretKey, ""),
		))
	}
	if options.ProxyHost != "" {
		proxy, err := url.Parse(fmt.Sprintf("http://%s:%d", options.ProxyHost, options.ProxyPort))
		if err != nil {
			return nil, fmt.Errorf("parse proxy address: %w", err)
		}
		client := awshttp.NewBuildableClient().WithTransportOptions(func(t *http.Transport) {
			t.Proxy = http.ProxyURL(proxy)
		})
		loaders = append(loaders, config.WithHTTPClient(client))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if options.Endpoint != "" {
			o.BaseEndpoint = aws.String(options.Endpoint)
		}
	}), nil
}
