// Package mocks contains mocks for the model interfaces.
package mocks

// UserResolver is a mockable model.UserResolver.
type UserResolver struct {
	MockName func() string
}

// Name calls MockName.
func (r *UserResolver) Name() string {
	return r.MockName()
}
