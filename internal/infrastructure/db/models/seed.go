package models

import "time"

// The tables mirror the job board's schema; column names are fixed by it,
// including the misspelled companies_company.serivces.

type Account struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Password    string     `gorm:"size:128;not null"`
	LastLogin   *time.Time `gorm:"column:last_login"`
	IsSuperuser bool       `gorm:"not null;default:false"`
	Username    string     `gorm:"size:150;not null;uniqueIndex"`
	FirstName   string     `gorm:"size:150;not null;default:''"`
	LastName    string     `gorm:"size:150;not null;default:''"`
	Email       string     `gorm:"size:254;not null;default:''"`
	IsStaff     bool       `gorm:"not null;default:false"`
	IsActive    bool       `gorm:"not null"`
	DateJoined  time.Time  `gorm:"not null"`
}

func (Account) TableName() string {
	return "auth_user"
}

type Organization struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"size:255;not null"`
	Logo        string    `gorm:"size:255;not null;default:''"`
	Industry    string    `gorm:"size:100;not null;default:''"`
	Services    string    `gorm:"column:serivces;type:text;not null;default:''"`
	Description string    `gorm:"type:text;not null;default:''"`
	Phone       string    `gorm:"size:32;not null;default:''"`
	Email       string    `gorm:"size:254;not null;index"`
	CreateDate  time.Time `gorm:"not null"`
	UserID      int64     `gorm:"not null;uniqueIndex"`
}

func (Organization) TableName() string {
	return "companies_company"
}

type Listing struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	CompanyID   int64     `gorm:"not null;index"`
	Title       string    `gorm:"size:255;not null"`
	Industry    string    `gorm:"size:100;not null;default:''"`
	Budget      string    `gorm:"size:100;not null;default:''"`
	Duration    string    `gorm:"size:100;not null;default:''"`
	Description string    `gorm:"type:text;not null;default:''"`
	Requirement string    `gorm:"type:text;not null;default:''"`
	PublishDate time.Time `gorm:"not null"`
	IsActive    bool      `gorm:"not null"`
}

func (Listing) TableName() string {
	return "listings_listing"
}

type Application struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:255;not null"`
	Email     string    `gorm:"size:254;not null"`
	Phone     string    `gorm:"size:32;not null;default:''"`
	Message   string    `gorm:"type:text;not null;default:''"`
	CV        string    `gorm:"column:cv;size:255;not null;default:''"`
	ApplyDate time.Time `gorm:"not null"`
	ListingID int64     `gorm:"not null;index"`
	UserID    int64     `gorm:"not null;index"`
}

func (Application) TableName() string {
	return "applies_apply"
}

// All lists the models in dependency order, for migrations.
func All() []any {
	return []any{&Account{}, &Organization{}, &Listing{}, &Application{}}
}
