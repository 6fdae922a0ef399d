// Package seed fills an empty database with example shops for manual
// testing. Running it again only adds what is missing.
package seed

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/domain/crud"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Report counts what a run created.
type Report struct {
	AdminCreated    bool `json:"admin_created"`
	ShopsCreated    int  `json:"shops_created"`
	ServicesCreated int  `json:"services_created"`
	BarbersCreated  int  `json:"barbers_created"`
}

// Run ensures the admin account, the example shops and, for every one of
// them, each template service and assigned barber. Existing rows are
// matched by natural key (username, shop name, shop+name) and never
// overwritten.
func Run(ctx context.Context, db *gorm.DB, log *zap.Logger, adminPassword string) (Report, error) {
	var report Report

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created, err := ensureAdmin(ctx, tx, adminPassword)
		if err != nil {
			return err
		}
		report.AdminCreated = created
		if created {
			log.Info("admin account created", zap.String("username", AdminUsername))
		}

		shops := infraRepo.NewShopGormRepository(tx)
		services := infraRepo.NewServiceGormRepository(tx)
		barbers := infraRepo.NewBarberGormRepository(tx)

		for _, st := range shopTemplates {
			shop, created, err := ensureShop(ctx, shops, st)
			if err != nil {
				return err
			}
			if created {
				report.ShopsCreated++
				log.Info("shop created", zap.String("shop", shop.Name))
			}

			for _, svc := range serviceTemplates {
				created, err := ensureService(ctx, services, shop.ID, svc)
				if err != nil {
					return err
				}
				if created {
					report.ServicesCreated++
				}
			}

			for _, idx := range st.BarberIndices {
				created, err := ensureBarber(ctx, barbers, shop.ID, barberTemplates[idx])
				if err != nil {
					return err
				}
				if created {
					report.BarbersCreated++
				}
			}
		}
		return nil
	})
	if err != nil {
		return Report{}, fmt.Errorf("seed: %w", err)
	}

	log.Info("database populated",
		zap.Bool("admin_created", report.AdminCreated),
		zap.Int("shops_created", report.ShopsCreated),
		zap.Int("services_created", report.ServicesCreated),
		zap.Int("barbers_created", report.BarbersCreated),
	)
	return report, nil
}

func ensureAdmin(ctx context.Context, tx *gorm.DB, password string) (bool, error) {
	accounts := infraRepo.NewAccountGormRepository(tx)

	_, err := accounts.FindByUsername(ctx, AdminUsername)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, crud.ErrNotFound) {
		return false, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}

	admin := models.Account{
		Username:     AdminUsername,
		Email:        AdminEmail,
		PasswordHash: hash,
		IsStaff:      true,
		IsActive:     true,
	}
	if err := accounts.Create(ctx, &admin); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}

func ensureShop(
	ctx context.Context,
	shops *infraRepo.ShopGormRepository,
	st shopTemplate,
) (*models.Shop, bool, error) {

	shop, err := shops.FindByName(ctx, st.Name)
	if err == nil {
		return shop, false, nil
	}
	if !errors.Is(err, crud.ErrNotFound) {
		return nil, false, err
	}

	logo := st.Logo
	shop = &models.Shop{
		Name:             st.Name,
		Address:          st.Address,
		Rating:           st.Rating,
		ReviewsCount:     st.ReviewsCount,
		Image:            st.Image,
		Logo:             &logo,
		Status:           st.Status,
		OpeningHours:     st.OpeningHours,
		Phone:            st.Phone,
		Tags:             datatypes.JSONSlice[string](st.Tags),
		MainServicePrice: price(st.MainServicePrice),
		MainServiceName:  st.MainServiceName,
	}
	if err := shops.Create(ctx, shop); err != nil {
		return nil, false, fmt.Errorf("create shop %q: %w", st.Name, err)
	}
	return shop, true, nil
}

func ensureService(
	ctx context.Context,
	services *infraRepo.ServiceGormRepository,
	shopID uint,
	t serviceTemplate,
) (bool, error) {

	_, err := services.FindInShop(ctx, shopID, t.Name)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, crud.ErrNotFound) {
		return false, err
	}

	s := &models.Service{
		ShopID:      shopID,
		Name:        t.Name,
		Price:       price(t.Price),
		DurationMin: t.DurationMin,
		Description: t.Description,
		Category:    t.Category,
	}
	if t.Discount > 0 {
		d := price(t.Discount)
		s.Discount = &d
	}
	if err := services.Create(ctx, s); err != nil {
		return false, fmt.Errorf("create service %q: %w", t.Name, err)
	}
	return true, nil
}

func ensureBarber(
	ctx context.Context,
	barbers *infraRepo.BarberGormRepository,
	shopID uint,
	t barberTemplate,
) (bool, error) {

	_, err := barbers.FindInShop(ctx, shopID, t.Name)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, crud.ErrNotFound) {
		return false, err
	}

	b := &models.Barber{ShopID: shopID, Name: t.Name, Avatar: t.Avatar}
	if err := barbers.Create(ctx, b); err != nil {
		return false, fmt.Errorf("create barber %q: %w", t.Name, err)
	}
	return true, nil
}
