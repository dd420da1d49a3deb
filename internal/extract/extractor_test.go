package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	response string
	called   bool
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.called = true
	return f.response, nil
}

func TestExtractParsesModelOutput(t *testing.T) {
	fake := &fakeCompleter{response: "Flour: 5 lb: 4.99\nSugar: 2 lb: 3.50"}
	e := New(fake)

	items, err := e.Extract(context.Background(), "FLOUR 5LB 4.99\nSUGAR 2LB 3.50\nTOTAL 8.49")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Flour", items[0].Name)
	assert.Equal(t, "5 lb", items[0].Size)
	assert.Equal(t, "4.99", items[0].Price)
}

func TestExtractDropsIncompleteItems(t *testing.T) {
	fake := &fakeCompleter{response: "Flour: 5 lb: 4.99\n: 2 lb: 3.50\nTax: :"}
	e := New(fake)

	items, err := e.Extract(context.Background(), "some receipt")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Flour", items[0].Name)
}

func TestExtractEmptyTextSkipsModel(t *testing.T) {
	fake := &fakeCompleter{response: "should not be used"}
	e := New(fake)

	items, err := e.Extract(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, items)
	assert.False(t, fake.called)
}
