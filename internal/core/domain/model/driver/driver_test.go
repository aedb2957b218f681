package driver_test

import (
	"testing"
	"time"

	"haulage/internal/core/domain/model/driver"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDocuments(t *testing.T) driver.Documents {
	t.Helper()

	license, err := kernel.PresentDocument("uploads/license.pdf")
	require.NoError(t, err)
	photo, err := kernel.PresentDocument("uploads/photo.jpg")
	require.NoError(t, err)
	conduct, err := kernel.PresentDocument("uploads/conduct.pdf")
	require.NoError(t, err)
	pass, err := kernel.PresentDocument("uploads/portpass.pdf")
	require.NoError(t, err)

	return driver.Documents{
		LicenseFile:        license,
		PassportPhoto:      photo,
		ConductCertificate: conduct,
		PortPass:           pass,
	}
}

func TestNewDriver(t *testing.T) {
	expiry := kernel.ExpiryOn(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))

	t.Run("creates driver with documents", func(t *testing.T) {
		id := kernel.NewUUID()
		docs := fullDocuments(t)

		d, err := driver.NewDriver(id, "J. Mwangi", driver.RoleDriver, docs, expiry)

		require.NoError(t, err)
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, "J. Mwangi", d.Name())
		assert.True(t, d.Documents().LicenseFile.IsPresent())
		assert.True(t, d.LicenseExpiry().IsSet())
		require.NoError(t, d.Validate())
	})

	t.Run("rejects non-driver roles", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), "Admin", "admin", fullDocuments(t), expiry)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), "", driver.RoleDriver, fullDocuments(t), expiry)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("accepts missing documents and unset expiry", func(t *testing.T) {
		// Incomplete records are valid read models; the compliance gate, not
		// the constructor, decides whether they block assignment.
		d, err := driver.NewDriver(kernel.NewUUID(), "New Hire", driver.RoleDriver, driver.Documents{}, kernel.NoExpiry())

		require.NoError(t, err)
		assert.False(t, d.Documents().PortPass.IsPresent())
		assert.False(t, d.LicenseExpiry().IsSet())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var d driver.Driver
		require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
	})
}
