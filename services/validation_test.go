package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitleNoDigits(t *testing.T) {
	assert.Nil(t, ValidateTitleNoDigits("Toyota Camry"))

	verr := ValidateTitleNoDigits("Toyota Camry 2")
	require.NotNil(t, verr)
	assert.Equal(t, "no_digits", verr.Code)
	assert.Equal(t, "title", verr.Field)
}

func TestValidateTitleNoTest(t *testing.T) {
	assert.Nil(t, ValidateTitleNoTest("Toyota Camry"))

	verr := ValidateTitleNoTest("This is a TEST car")
	require.NotNil(t, verr)
	assert.Equal(t, "no_test", verr.Code)
}

func TestQuickAndModelPipelinesDiffer(t *testing.T) {
	// The quick form has no reserved-word check.
	assert.Empty(t, ValidateQuickTitle("This is a test car"))

	errs := ValidateModelTitle("This is a test car")
	require.Len(t, errs, 1)
	assert.Equal(t, "no_test", errs[0].Code)

	// Both checks fail: reserved word is reported first.
	errs = ValidateModelTitle("test car 5")
	require.Len(t, errs, 2)
	assert.Equal(t, "no_test", errs[0].Code)
	assert.Equal(t, "no_digits", errs[1].Code)
}

func TestValidatePrice(t *testing.T) {
	value, verr := ValidatePrice("27000.00")
	require.Nil(t, verr)
	assert.Equal(t, 27000.00, value)

	value, verr = ValidatePrice("27000")
	require.Nil(t, verr)
	assert.Equal(t, 27000.0, value)

	_, verr = ValidatePrice("-5.00")
	require.NotNil(t, verr)
	assert.Equal(t, "price_negative", verr.Code)

	// 9 whole digits: over the 10-digit budget with 2 decimal places.
	_, verr = ValidatePrice("123456789.00")
	require.NotNil(t, verr)
	assert.Equal(t, "price_digits", verr.Code)

	// 8 whole digits fit.
	_, verr = ValidatePrice("99999999.99")
	assert.Nil(t, verr)

	_, verr = ValidatePrice("10.123")
	require.NotNil(t, verr)
	assert.Equal(t, "price_digits", verr.Code)

	_, verr = ValidatePrice("abc")
	require.NotNil(t, verr)

	_, verr = ValidatePrice("")
	require.NotNil(t, verr)
}

func TestValidateUploadSize(t *testing.T) {
	assert.Nil(t, ValidateUploadSize(MaxUploadSize))

	verr := ValidateUploadSize(MaxUploadSize + 1)
	require.NotNil(t, verr)
	assert.Equal(t, "file_too_large", verr.Code)
	assert.Contains(t, verr.Message, "10 MB")
}

func TestValidateImageContent(t *testing.T) {
	assert.Nil(t, ValidateImageContent("image/png"))
	assert.Nil(t, ValidateImageContent("image/jpeg"))

	verr := ValidateImageContent("application/pdf")
	require.NotNil(t, verr)
	assert.Equal(t, "not_image", verr.Code)
}
