package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInvalidRequestError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsInvalidRequestError(stdErr))

	irErr := InvalidRequestError("invalid request")
	assert.True(t, IsInvalidRequestError(irErr))

	wrapperErr := fmt.Errorf("wrapping message: %w", irErr)
	assert.True(t, IsInvalidRequestError(wrapperErr))
}

func TestFetchErrorKind(t *testing.T) {
	assert.Equal(t, KindUnknown, FetchErrorKind(nil))
	assert.Equal(t, KindUnknown, FetchErrorKind(errors.New("simple error")))

	fe := NewFetchError("contributors", KindStatus, errors.New("got invalid http status code: 500"))
	assert.Equal(t, KindStatus, FetchErrorKind(fe))
	assert.Equal(t, KindStatus, FetchErrorKind(fmt.Errorf("loading: %w", fe)))
	assert.Equal(t, "contributors: status error: got invalid http status code: 500", fe.Error())

	cause := errors.New("connection refused")
	assert.True(t, errors.Is(NewFetchError("repo", KindNetwork, cause), cause))
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "network", KindNetwork.String())
	assert.Equal(t, "status", KindStatus.String())
	assert.Equal(t, "parse", KindParse.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
