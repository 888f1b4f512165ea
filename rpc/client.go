package rpc

// ClientInterface is the interface that defines the implementation of all the endpoints
type ClientInterface interface {
	SwapLayerClientInterface
}

// ClientFactoryInterface interface for the client factory
type ClientFactoryInterface interface {
	NewClient(url string) ClientInterface
}

// ClientFactory is the implementation of the swap layer client factory
type ClientFactory struct{}

// NewClient returns an implementation of the swap layer node client
func (f *ClientFactory) NewClient(url string) ClientInterface {
	return NewClient(url)
}

// Client wraps all the available endpoints of the swap layer node server
type Client struct {
	url string
}

// NewClient returns a client ready to be used
func NewClient(url string) *Client {
	return &Client{
		url: url,
	}
}
