package mediator_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacecargo/internal/application/mediator"
)

type echoCommand struct{ Text string }

type echoHandler struct{}

func (echoHandler) Handle(_ context.Context, request mediator.Request) (mediator.Response, error) {
	return request.(*echoCommand).Text, nil
}

func TestMediator_SendRunsMiddlewaresOutermostFirst(t *testing.T) {
	// Arrange
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*echoCommand](m, echoHandler{}))

	var order []string
	for _, name := range []string{"outer", "inner"} {
		name := name
		m.RegisterMiddleware(func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
			order = append(order, name+":before")
			resp, err := next(ctx, request)
			order = append(order, name+":after")
			return resp, err
		})
	}

	// Act
	resp, err := m.Send(context.Background(), &echoCommand{Text: "hello"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "hello", resp)
	assert.Equal(t, []string{"outer:before", "inner:before", "inner:after", "outer:after"}, order)
}

func TestMediator_Errors(t *testing.T) {
	m := mediator.NewMediator()

	_, err := m.Send(context.Background(), &echoCommand{})
	assert.ErrorContains(t, err, "no handler registered")

	_, err = m.Send(context.Background(), nil)
	assert.Error(t, err)

	require.NoError(t, mediator.RegisterHandler[*echoCommand](m, echoHandler{}))
	_, err = m.Send(context.Background(), (*echoCommand)(nil))
	assert.ErrorContains(t, err, "request cannot be a nil *mediator_test.echoCommand")

	assert.Error(t, m.Register(nil, echoHandler{}))
	assert.Error(t, m.Register(reflect.TypeOf(&echoCommand{}), nil))

	assert.ErrorContains(t, m.Register(reflect.TypeOf(&echoCommand{}), echoHandler{}), "already registered")
}

func TestHandlerFunc_ActsAsHandler(t *testing.T) {
	m := mediator.NewMediator()
	handler := mediator.HandlerFunc(func(_ context.Context, _ mediator.Request) (mediator.Response, error) {
		return 42, nil
	})
	require.NoError(t, m.Register(reflect.TypeOf(&echoCommand{}), handler))

	resp, err := m.Send(context.Background(), &echoCommand{})

	require.NoError(t, err)
	assert.Equal(t, 42, resp)
}
