package mocks

// MockQRService implements domain.QRService for testing
type MockQRService struct {
	RenderPNGFunc func(provisioningURI string) ([]byte, error)
}

// NewMockQRService creates a new MockQRService with default behaviors
func NewMockQRService() *MockQRService {
	return &MockQRService{}
}

// RenderPNG renders a provisioning URI as a PNG image
func (m *MockQRService) RenderPNG(provisioningURI string) ([]byte, error) {
	if m.RenderPNGFunc != nil {
		return m.RenderPNGFunc(provisioningURI)
	}
	// Default behavior: fake image bytes
	return []byte("png:" + provisioningURI), nil
}
