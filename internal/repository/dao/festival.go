package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrFestivalNotFound = errors.New("festival not found")
	ErrNoFestivals      = errors.New("no festivals found")
)

// Address, Category and Period are reference tables deduplicated by
// natural key. The composite unique indexes back the insert-or-ignore
// logic in findOrCreate* so concurrent writers cannot create duplicate
// reference rows.
type Address struct {
	ID uint `gorm:"primaryKey"`

	PostalAddress string  `gorm:"uniqueIndex:idx_addresses_natural_key;not null"`
	INSEECode     string  `gorm:"uniqueIndex:idx_addresses_natural_key;not null"`
	Region        string  `gorm:"not null"`
	Department    string  `gorm:"not null"`
	Commune       string  `gorm:"not null"`
	Longitude     float64 `gorm:"not null"`
	Latitude      float64 `gorm:"not null"`
}

type Category struct {
	ID uint `gorm:"primaryKey"`

	Discipline  string `gorm:"uniqueIndex:idx_categories_natural_key;not null"`
	Subcategory string `gorm:"uniqueIndex:idx_categories_natural_key;not null"`
}

type Period struct {
	ID uint `gorm:"primaryKey"`

	Label    string `gorm:"uniqueIndex;not null"`
	Category string `gorm:"not null"`
}

// Festival owns the three foreign keys. Deleting a festival never touches
// its reference rows; deleting a referenced reference row is rejected by
// the RESTRICT constraint.
type Festival struct {
	ID uint `gorm:"primaryKey"`

	Name         string `gorm:"not null"`
	CreationYear *int
	Website      string

	AddressID  uint     `gorm:"not null"`
	Address    Address  `gorm:"foreignKey:AddressID;constraint:OnDelete:RESTRICT"`
	CategoryID uint     `gorm:"not null"`
	Category   Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	PeriodID   uint     `gorm:"not null"`
	Period     Period   `gorm:"foreignKey:PeriodID;constraint:OnDelete:RESTRICT"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type FestivalDAO struct {
	db *gorm.DB
}

func NewFestivalDAO(db *gorm.DB) *FestivalDAO {
	return &FestivalDAO{
		db: db,
	}
}

// Insert resolves the festival's reference rows by natural key and
// creates the festival, all inside one transaction.
func (d *FestivalDAO) Insert(ctx context.Context, festival Festival) (Festival, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return insertOne(tx, &festival)
	})
	if err != nil {
		return Festival{}, err
	}

	return d.FindByID(ctx, festival.ID)
}

// InsertBatch loads many festivals atomically. A failure on any row rolls
// back the whole batch so no orphaned festival or half-committed
// reference row survives.
func (d *FestivalDAO) InsertBatch(ctx context.Context, festivals []Festival) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range festivals {
			if err := insertOne(tx, &festivals[i]); err != nil {
				return err
			}
		}

		return nil
	})
}

func insertOne(tx *gorm.DB, festival *Festival) error {
	address, err := findOrCreateAddress(tx, festival.Address)
	if err != nil {
		return err
	}

	period, err := findOrCreatePeriod(tx, festival.Period)
	if err != nil {
		return err
	}

	category, err := findOrCreateCategory(tx, festival.Category)
	if err != nil {
		return err
	}

	festival.AddressID = address.ID
	festival.Address = address
	festival.PeriodID = period.ID
	festival.Period = period
	festival.CategoryID = category.ID
	festival.Category = category

	return tx.Create(festival).Error
}

// findOrCreateAddress looks up by natural key, then inserts with
// ON CONFLICT DO NOTHING and re-selects when another writer won the race.
func findOrCreateAddress(tx *gorm.DB, address Address) (Address, error) {
	var existing Address

	err := tx.First(&existing, "postal_address = ? AND insee_code = ?",
		address.PostalAddress, address.INSEECode).Error
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Address{}, err
	}

	address.ID = 0
	if err = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&address).Error; err != nil {
		return Address{}, err
	}
	if address.ID != 0 {
		return address, nil
	}

	err = tx.First(&existing, "postal_address = ? AND insee_code = ?",
		address.PostalAddress, address.INSEECode).Error

	return existing, err
}

func findOrCreatePeriod(tx *gorm.DB, period Period) (Period, error) {
	var existing Period

	err := tx.First(&existing, "label = ?", period.Label).Error
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Period{}, err
	}

	period.ID = 0
	if err = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&period).Error; err != nil {
		return Period{}, err
	}
	if period.ID != 0 {
		return period, nil
	}

	err = tx.First(&existing, "label = ?", period.Label).Error

	return existing, err
}

func findOrCreateCategory(tx *gorm.DB, category Category) (Category, error) {
	var existing Category

	err := tx.First(&existing, "discipline = ? AND subcategory = ?",
		category.Discipline, category.Subcategory).Error
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Category{}, err
	}

	category.ID = 0
	if err = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&category).Error; err != nil {
		return Category{}, err
	}
	if category.ID != 0 {
		return category, nil
	}

	err = tx.First(&existing, "discipline = ? AND subcategory = ?",
		category.Discipline, category.Subcategory).Error

	return existing, err
}

func (d *FestivalDAO) FindByID(ctx context.Context, id uint) (Festival, error) {
	var festival Festival

	result := d.db.WithContext(ctx).
		Preload("Address").
		Preload("Category").
		Preload("Period").
		First(&festival, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Festival{}, ErrFestivalNotFound
		}

		return Festival{}, result.Error
	}

	return festival, nil
}

func (d *FestivalDAO) List(ctx context.Context, limit, offset int) ([]Festival, error) {
	var festivals []Festival

	result := d.db.WithContext(ctx).
		Preload("Address").
		Preload("Category").
		Preload("Period").
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&festivals)
	if result.Error != nil {
		return nil, result.Error
	}

	return festivals, nil
}

// Update rewrites the festival's own columns and re-resolves its
// reference rows from the given values, inside one transaction.
func (d *FestivalDAO) Update(ctx context.Context, festival Festival) (Festival, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Festival
		if err := tx.First(&existing, festival.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFestivalNotFound
			}

			return err
		}

		address, err := findOrCreateAddress(tx, festival.Address)
		if err != nil {
			return err
		}

		period, err := findOrCreatePeriod(tx, festival.Period)
		if err != nil {
			return err
		}

		category, err := findOrCreateCategory(tx, festival.Category)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"name":          festival.Name,
			"creation_year": festival.CreationYear,
			"website":       festival.Website,
			"address_id":    address.ID,
			"period_id":     period.ID,
			"category_id":   category.ID,
		}

		return tx.Model(&existing).Updates(updates).Error
	})
	if err != nil {
		return Festival{}, err
	}

	return d.FindByID(ctx, festival.ID)
}

func (d *FestivalDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Festival{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFestivalNotFound
	}

	return nil
}

func (d *FestivalDAO) CountAddresses(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Address{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
