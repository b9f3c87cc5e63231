//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_cancel_post_test
package booking_cancel_post

type Sessions interface {
	Discard(clientID string) error
}
