package repository

import (
	"github.com/amakye/shopfront-backend/internal/app/model"
	"github.com/amakye/shopfront-backend/pkg/logger"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	FindByEmail(email string) (*model.Customer, error)
	FindByID(id string) (*model.Customer, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *model.Customer) error {
	logger.Debug("Creating customer in database", map[string]interface{}{
		"email": customer.Email,
	})

	if err := r.db.Create(customer).Error; err != nil {
		logger.Error("Failed to create customer in database", err, map[string]interface{}{
			"email": customer.Email,
		})
		return err
	}

	logger.Debug("Customer created in database", map[string]interface{}{
		"customer_id": customer.ID,
		"email":       customer.Email,
	})
	return nil
}

// FindByEmail looks a customer up by exact email match. Returns
// gorm.ErrRecordNotFound when no customer has the email.
func (r *customerRepository) FindByEmail(email string) (*model.Customer, error) {
	logger.Debug("Finding customer by email in database", map[string]interface{}{
		"email": email,
	})

	var customer model.Customer
	if err := r.db.First(&customer, "email = ?", email).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to find customer by email in database", err, map[string]interface{}{
				"email": email,
			})
		}
		return nil, err
	}

	logger.Debug("Customer found by email in database", map[string]interface{}{
		"customer_id": customer.ID,
		"email":       customer.Email,
	})
	return &customer, nil
}

func (r *customerRepository) FindByID(id string) (*model.Customer, error) {
	logger.Debug("Finding customer by ID in database", map[string]interface{}{
		"customer_id": id,
	})

	var customer model.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		logger.Error("Failed to find customer by ID in database", err, map[string]interface{}{
			"customer_id": id,
		})
		return nil, err
	}

	return &customer, nil
}
