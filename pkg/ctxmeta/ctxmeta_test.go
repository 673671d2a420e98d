package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gunvolt24/holidays/pkg/ctxmeta"
)

func TestRequestID_RoundTrip(t *testing.T) {
	type foreignKey struct{}

	cases := []struct {
		name   string
		ctx    func() context.Context
		wantID string
		wantOK bool
	}{
		{
			name:   "stored",
			ctx:    func() context.Context { return ctxmeta.WithRequestID(context.Background(), "rid-holidays-1") },
			wantID: "rid-holidays-1",
			wantOK: true,
		},
		{
			name: "absent",
			ctx:  context.Background,
		},
		{
			name: "empty value under own key",
			ctx:  func() context.Context { return context.WithValue(context.Background(), ctxmeta.KeyRequestID, "") },
		},
		{
			name: "value under foreign key",
			ctx:  func() context.Context { return context.WithValue(context.Background(), foreignKey{}, "rid-x") },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := ctxmeta.RequestIDFromContext(tc.ctx())
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestWithRequestID_Noop(t *testing.T) {
	parent := context.Background()
	assert.Equal(t, parent, ctxmeta.WithRequestID(parent, ""), "пустой id не меняет контекст")

	var nilCtx context.Context
	assert.Nil(t, ctxmeta.WithRequestID(nilCtx, "rid"))

	id, ok := ctxmeta.RequestIDFromContext(nilCtx)
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestWithRequestID_ParentUntouched(t *testing.T) {
	parent := context.Background()
	_ = ctxmeta.WithRequestID(parent, "child-only")

	_, ok := ctxmeta.RequestIDFromContext(parent)
	assert.False(t, ok)
}
