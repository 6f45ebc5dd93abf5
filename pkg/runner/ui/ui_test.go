package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefusesWithoutTerminal(t *testing.T) {
	u := &UI{Interactive: func() bool { return false }}
	assert.ErrorIs(t, u.Do(context.Background()), ErrNotTerminal)
}
