package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "catalog:products::", key(domain.ProductFilter{}))
	assert.Equal(t, "catalog:products:wraps:satin", key(domain.ProductFilter{Category: "wraps", Search: " SATIN "}))
}

func TestEncodeDecode_KeepsOptionalAttributes(t *testing.T) {
	stars := 800
	finish := "gloss"
	in := []*domain.Product{
		{ID: "1", SKU: "STR-800", Category: domain.CategoryStarlight, Price: 6000, Stars: &stars},
		{ID: "2", SKU: "PNT-RED", Category: domain.CategoryPaints, Finish: &finish, Colors: []string{"red"}},
	}

	data, err := encode(in)
	require.NoError(t, err)

	out, err := decode(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecode_Corrupt(t *testing.T) {
	_, err := decode([]byte("{not a list"))
	assert.ErrorIs(t, err, ErrEncode)
}
