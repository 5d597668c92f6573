// Package http_client provides a shareable HTTP client managed object
// source and a function making individual HTTP requests through it.
package http_client

import (
	"fmt"
	"strconv"
	"time"

	"github.com/specialistvlad/floorplan/internal/registry"
	"github.com/specialistvlad/floorplan/internal/typeload"
)

// Source names registered by this module.
const (
	ClientSource  = "http_client"
	RequestSource = "http_request"
)

// Module implements the registry.Module interface. It registers the client
// source and the request function.
type Module struct{}

// Client is the object the client source provides.
type Client struct {
	Timeout      string `cty:"timeout"`
	MaxIdleConns int    `cty:"max_idle_conns"`
}

// Request is the parameter of the request function.
type Request struct {
	URL    string `cty:"url"`
	Method string `cty:"method"`
}

// Response is the argument of the request function's response flow.
type Response struct {
	StatusCode int    `cty:"status_code"`
	Body       string `cty:"body"`
}

var (
	ClientType   = typeload.MustImpliedType(Client{})
	RequestType  = typeload.MustImpliedType(Request{})
	ResponseType = typeload.MustImpliedType(Response{})
)

// ClientConfig parses the client source's properties. The timeout defaults
// to 30s.
func ClientConfig(properties map[string]string) (Client, error) {
	c := Client{Timeout: "30s", MaxIdleConns: 100}
	if v, ok := properties["timeout"]; ok {
		if _, err := time.ParseDuration(v); err != nil {
			return Client{}, fmt.Errorf("invalid timeout: %w", err)
		}
		c.Timeout = v
	}
	if v, ok := properties["max_idle_conns"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Client{}, fmt.Errorf("max_idle_conns must be a non-negative integer, got %q", v)
		}
		c.MaxIdleConns = n
	}
	return c, nil
}

// DescribeClient declares the client source. Requests run on its `io` team
// and the source can be instrumented.
func DescribeClient(properties map[string]string) (*typeload.ManagedObjectType, error) {
	if _, err := ClientConfig(properties); err != nil {
		return nil, err
	}
	return &typeload.ManagedObjectType{
		ObjectType:     ClientType,
		Teams:          []string{"io"},
		Instrumentable: true,
	}, nil
}

// DescribeRequest declares the request function: it uses a client object,
// passes the response on and escalates transport failures.
func DescribeRequest(map[string]string) (*typeload.FunctionType, error) {
	return &typeload.FunctionType{
		Parameter:   RequestType,
		Objects:     []typeload.Dependency{{Name: "client", Type: ClientType}},
		Flows:       []typeload.Flow{{Name: "response", ArgumentType: ResponseType}},
		Escalations: []string{"error"},
	}, nil
}

// Register registers all of the module's sources with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterManagedObjectSource(ClientSource, typeload.ManagedObjectSourceFunc(DescribeClient))
	r.RegisterFunction(RequestSource, typeload.FunctionSourceFunc(DescribeRequest))
}
