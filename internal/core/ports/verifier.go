package ports

// Verifier defines the interface for checking that bundle files exist on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// MissingFiles returns the names that do not exist below root, in input order.
	MissingFiles(root string, names []string) ([]string, error)
}
