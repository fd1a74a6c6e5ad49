package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID    uint
	Value string
}

type entity struct {
	N int
}

func toEntity(r *row) (*entity, error) {
	if r.Value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(r.Value)
	if err != nil {
		return nil, err
	}
	return &entity{N: n}, nil
}

func rowID(r *row) uint { return r.ID }

func TestMapSlicePtrSkipNil(t *testing.T) {
	double := func(r *row) *entity {
		if r.Value == "skip" {
			return nil
		}
		n, _ := strconv.Atoi(r.Value)
		return &entity{N: n * 2}
	}

	assert.Nil(t, MapSlicePtrSkipNil[row, entity](nil, double))

	got := MapSlicePtrSkipNil([]*row{{Value: "1"}, nil, {Value: "skip"}, {Value: "4"}}, double)
	assert.Equal(t, []*entity{{N: 2}, {N: 8}}, got)
}

func TestMapSlicePtrWithID(t *testing.T) {
	got, err := MapSlicePtrWithID([]*row{{ID: 1, Value: "3"}, nil, {ID: 2, Value: ""}}, toEntity, rowID)
	require.NoError(t, err)
	assert.Equal(t, []*entity{{N: 3}}, got)

	_, err = MapSlicePtrWithID([]*row{{ID: 1, Value: "3"}, {ID: 7, Value: "x"}}, toEntity, rowID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item ID 7")
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
}
