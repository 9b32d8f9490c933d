package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestResolvePayeeVariants(t *testing.T) {
	c := &Cheque{PayeeType: PayeeSaved, PayeeID: strPtr("payee-1")}
	p, err := c.ResolvePayee()
	require.NoError(t, err)
	assert.Equal(t, SavedPayee{PayeeID: "payee-1"}, p)

	c = &Cheque{PayeeType: PayeeTenant, TenantID: strPtr("tenant-1")}
	p, err = c.ResolvePayee()
	require.NoError(t, err)
	assert.Equal(t, TenantPayee{TenantID: "tenant-1"}, p)

	c = &Cheque{PayeeType: PayeeManual, ManualPayeeName: strPtr("Ahmed Trading LLC")}
	p, err = c.ResolvePayee()
	require.NoError(t, err)
	assert.Equal(t, ManualPayee{Name: "Ahmed Trading LLC"}, p)
}

func TestResolvePayeeRejectsInconsistentRows(t *testing.T) {
	// Discriminator says saved but the variant column is missing.
	c := &Cheque{PayeeType: PayeeSaved}
	_, err := c.ResolvePayee()
	assert.Error(t, err)

	// Two variant columns set at once.
	c = &Cheque{PayeeType: PayeeTenant, TenantID: strPtr("tenant-1"), ManualPayeeName: strPtr("someone")}
	_, err = c.ResolvePayee()
	assert.Error(t, err)

	c = &Cheque{PayeeType: PayeeType("unknown")}
	_, err = c.ResolvePayee()
	assert.Error(t, err)
}

func TestSetPayeeClearsOtherVariants(t *testing.T) {
	c := &Cheque{}
	c.SetPayee(TenantPayee{TenantID: "tenant-1"})
	require.NotNil(t, c.TenantID)
	assert.Nil(t, c.PayeeID)
	assert.Nil(t, c.ManualPayeeName)
	assert.Equal(t, PayeeTenant, c.PayeeType)

	// Re-pointing replaces the variant completely.
	c.SetPayee(ManualPayee{Name: "Cash"})
	assert.Nil(t, c.TenantID)
	require.NotNil(t, c.ManualPayeeName)
	assert.Equal(t, "Cash", *c.ManualPayeeName)

	p, err := c.ResolvePayee()
	require.NoError(t, err)
	assert.Equal(t, PayeeManual, p.Type())
}
