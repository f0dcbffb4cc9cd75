package service

import (
	"errors"
	"testing"

	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/repository"
)

func setupFavoriteServiceTest(t *testing.T) *FavoriteService {
	t.Helper()
	db := openServiceTestDB(t, &models.Favorite{})
	return NewFavoriteService(repository.NewFavoriteRepository(db))
}

func TestFavoriteAddIsIdempotent(t *testing.T) {
	svc := setupFavoriteServiceTest(t)

	first, err := svc.Add(1, 42)
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	second, err := svc.Add(1, 42)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("repeat add should return existing row %d, got %d", first.ID, second.ID)
	}

	favorites, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(favorites) != 1 {
		t.Fatalf("favorite count want 1 got %d", len(favorites))
	}
}

func TestFavoriteDuplicateRowIsRejectedByUniqueIndex(t *testing.T) {
	db := openServiceTestDB(t, &models.Favorite{})
	repo := repository.NewFavoriteRepository(db)

	if err := repo.Create(&models.Favorite{UserID: 1, ProductID: 42}); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if err := repo.Create(&models.Favorite{UserID: 1, ProductID: 42}); err == nil {
		t.Fatalf("second insert for the same (user, product) pair should violate the unique index")
	}
}

func TestFavoriteCheckAndRemove(t *testing.T) {
	svc := setupFavoriteServiceTest(t)

	if _, err := svc.Add(1, 42); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	isFavorite, err := svc.IsFavorite(1, 42)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !isFavorite {
		t.Fatalf("added product should be a favorite")
	}

	isFavorite, err = svc.IsFavorite(1, 43)
	if err != nil {
		t.Fatalf("check missing failed: %v", err)
	}
	if isFavorite {
		t.Fatalf("unknown product should not be a favorite")
	}

	if err := svc.Remove(1, 42); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := svc.Remove(1, 42); !errors.Is(err, ErrFavoriteNotFound) {
		t.Fatalf("second remove want ErrFavoriteNotFound got %v", err)
	}
}
