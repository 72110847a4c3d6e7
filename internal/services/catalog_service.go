package services

import (
	"context"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"
	"github.com/AnushkaAn/Online-Auction-Platform/pkg/logger"
)

type CatalogService struct {
	repo domain.CatalogRepository
	log  logger.Logger
}

func NewCatalogService(repo domain.CatalogRepository, log logger.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

func (s *CatalogService) AddCategory(ctx context.Context, name string) (*domain.ProductCategory, error) {
	category := &domain.ProductCategory{Name: name}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		s.log.Error("Failed to add product category", "name", name, "error", err)
		return nil, err
	}

	s.log.Info("Product category added", "category_id", category.ID, "name", name)
	return category, nil
}

// AddProduct stores product as given. Seller and category are not checked.
func (s *CatalogService) AddProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	product.ID = 0
	if err := s.repo.CreateProduct(ctx, &product); err != nil {
		s.log.Error("Failed to add product", "name", product.Name, "error", err)
		return nil, err
	}

	s.log.Info("Product added",
		"product_id", product.ID,
		"seller_id", product.SellerID,
		"category_id", product.CategoryID)
	return &product, nil
}
