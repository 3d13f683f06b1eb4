//go:build !protogen

package catalog

// NewRemoteProvider is a no-op without generated gRPC stubs; callers fall
// back to the static provider.
func NewRemoteProvider(_ string) (Provider, error) {
	return nil, nil
}
