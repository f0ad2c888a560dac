package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/curve/internal/adapters/compiler"
	"go.trai.ch/curve/internal/core/domain"
	"go.trai.ch/curve/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestMemo_ReusesLastFunction(t *testing.T) {
	memo := compiler.NewMemo(compiler.New())

	first, err := memo.Compile("x")
	require.NoError(t, err)
	again, err := memo.Compile("x")
	require.NoError(t, err)

	assert.Same(t, first, again)
	assert.Equal(t, 1, memo.Compiles())
}

func TestMemo_ExpressionChangeRecompiles(t *testing.T) {
	memo := compiler.NewMemo(compiler.New())
	changes := 0
	memo.OnChange(func() { changes++ })

	first, err := memo.Compile("x")
	require.NoError(t, err)
	second, err := memo.Compile("x**2")
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, "x**2", second.Source())
	assert.Equal(t, 2, changes)

	// Identity is exact text, not meaning.
	third, err := memo.Compile("x ** 2")
	require.NoError(t, err)
	assert.NotSame(t, second, third)
	assert.Equal(t, 3, changes)
}

func TestMemo_FailedCompileKeepsEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mocks.NewMockCompiler(ctrl)
	fn := mocks.NewMockCompiledFunction(ctrl)

	inner.EXPECT().Compile("x").Return(fn, nil).Times(1)
	inner.EXPECT().Compile("x+").Return(nil, zerr.Wrap(domain.ErrInvalidExpression, "syntax error")).Times(1)

	memo := compiler.NewMemo(inner)
	changes := 0
	memo.OnChange(func() { changes++ })

	got, err := memo.Compile("x")
	require.NoError(t, err)
	assert.Same(t, fn, got)

	_, err = memo.Compile("x+")
	require.ErrorIs(t, err, domain.ErrInvalidExpression)

	got, err = memo.Compile("x")
	require.NoError(t, err)
	assert.Same(t, fn, got)
	assert.Equal(t, 1, changes)
}
