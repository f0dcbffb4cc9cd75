package service

import (
	"errors"
	"testing"

	"github.com/markethub-api/internal/constants"
	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/repository"
)

func setupSupplierServiceTest(t *testing.T) *SupplierService {
	t.Helper()
	db := openServiceTestDB(t, &models.Supplier{})
	return NewSupplierService(repository.NewSupplierRepository(db))
}

func TestSupplierCreateDefaultsStatusToActive(t *testing.T) {
	svc := setupSupplierServiceTest(t)

	supplier, err := svc.Create(CreateSupplierInput{
		VendorID: 1,
		Name:     "Electronics Wholesale Ltd",
		Contact:  "John Smith",
		Email:    "john@electronics-wholesale.com",
	})
	if err != nil {
		t.Fatalf("create supplier failed: %v", err)
	}
	if supplier.Status != constants.SupplierStatusActive {
		t.Fatalf("default status want active got %s", supplier.Status)
	}
}

func TestSupplierStatusValidation(t *testing.T) {
	svc := setupSupplierServiceTest(t)

	if _, err := svc.Create(CreateSupplierInput{
		VendorID: 1,
		Name:     "Bad Status Inc",
		Status:   "paused",
	}); !errors.Is(err, ErrInvalidSupplierStatus) {
		t.Fatalf("unknown status want ErrInvalidSupplierStatus got %v", err)
	}

	supplier, err := svc.Create(CreateSupplierInput{VendorID: 1, Name: "Good Supplier"})
	if err != nil {
		t.Fatalf("create supplier failed: %v", err)
	}

	status := constants.SupplierStatusInactive
	updated, err := svc.Update(supplier.ID, UpdateSupplierInput{Status: &status})
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != constants.SupplierStatusInactive {
		t.Fatalf("status want inactive got %s", updated.Status)
	}

	bad := "retired"
	if _, err := svc.Update(supplier.ID, UpdateSupplierInput{Status: &bad}); !errors.Is(err, ErrInvalidSupplierStatus) {
		t.Fatalf("unknown status update want ErrInvalidSupplierStatus got %v", err)
	}
}

func TestSupplierUpdateAndDeleteMissing(t *testing.T) {
	svc := setupSupplierServiceTest(t)

	if _, err := svc.Update(999, UpdateSupplierInput{}); !errors.Is(err, ErrSupplierNotFound) {
		t.Fatalf("update missing want ErrSupplierNotFound got %v", err)
	}
	if err := svc.Delete(999); !errors.Is(err, ErrSupplierNotFound) {
		t.Fatalf("delete missing want ErrSupplierNotFound got %v", err)
	}

	supplier, err := svc.Create(CreateSupplierInput{VendorID: 1, Name: "Short Lived"})
	if err != nil {
		t.Fatalf("create supplier failed: %v", err)
	}
	if err := svc.Delete(supplier.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	suppliers, err := svc.ListByVendor(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(suppliers) != 0 {
		t.Fatalf("supplier count after delete want 0 got %d", len(suppliers))
	}
}
