package common

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestTry(t *testing.T) {
	calls := 0
	err := Try(3, 1, func() error {
		calls++
		if calls < 2 {
			return errors.New("not yet")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)

	calls = 0
	err = Try(3, 1, func() error {
		calls++
		return errors.New("never")
	})
	assert.EqualError(t, err, "never")
	assert.Equal(t, 3, calls)
}
