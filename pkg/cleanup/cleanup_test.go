package cleanup_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/limbo/progressly/pkg/cleanup"
)

func TestCleanUp(t *testing.T) {
	var order []string
	job := func(name string, err error) *cleanup.Job {
		return &cleanup.Job{
			Name: name,
			F: func() error {
				order = append(order, name)
				return err
			},
		}
	}
	cleanup.Register(job("pool", nil))
	cleanup.Register(job("logger", errors.New("sync failed")))
	cleanup.Register(job("server", nil))

	cleanup.CleanUp()
	assert.Equal(t, []string{"server", "logger", "pool"}, order)

	cleanup.CleanUp()
	assert.Len(t, order, 3, "jobs run only once")
}
