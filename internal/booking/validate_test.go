package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStructValid(t *testing.T) {
	errs := ValidateStruct(TrialStepOne{
		Name:  "Rahul Sharma",
		Email: "rahul@example.com",
		Phone: "9876543210",
	})
	assert.Nil(t, errs)
}

func TestValidateStructEmptyStepOne(t *testing.T) {
	errs := ValidateStruct(TrialStepOne{})
	require.Len(t, errs, 3)

	fields := make(map[string]string)
	for _, e := range errs {
		fields[e.Field] = e.Message
	}
	assert.Equal(t, "Name is required", fields["Name"])
	assert.Equal(t, "Email is required", fields["Email"])
	assert.Equal(t, "Phone is required", fields["Phone"])
}

func TestValidateStructShortName(t *testing.T) {
	errs := ValidateStruct(TrialStepOne{
		Name:  "R",
		Email: "rahul@example.com",
		Phone: "9876543210",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "Name", errs[0].Field)
	assert.Equal(t, "min", errs[0].Tag)
	assert.Equal(t, "Name must be at least 2 characters", errs[0].Message)
}

func TestValidateStructBadEmail(t *testing.T) {
	errs := ValidateStruct(TrialStepOne{
		Name:  "Rahul",
		Email: "not-an-email",
		Phone: "9876543210",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "Email must be a valid email address", errs[0].Message)
}

func TestValidateStructLongMessage(t *testing.T) {
	req := BookingRequest{
		Name:    "Rahul Sharma",
		Email:   "rahul@example.com",
		Phone:   "9876543210",
		Service: "Yoga Class",
		Date:    "2025-03-11",
		Time:    "6:00 PM",
	}
	for len(req.Message) <= 500 {
		req.Message += "I have a question about membership. "
	}

	errs := ValidateStruct(req)
	require.Len(t, errs, 1)
	assert.Equal(t, "Message", errs[0].Field)
	assert.Equal(t, "max", errs[0].Tag)
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidateStruct(TrialStepTwo{})
	require.NotNil(t, errs)
	assert.Contains(t, errs.Error(), "validation failed")
	assert.Contains(t, errs.Error(), "ServiceID is required")
}
