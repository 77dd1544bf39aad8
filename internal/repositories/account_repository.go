package repositories

import (
	"github.com/proconnect-app/backend/internal/models"
	"gorm.io/gorm"
)

// AccountRepository defines the interface for credential data operations
type AccountRepository interface {
	Create(account *models.Account) error
	GetByEmail(email string) (*models.Account, error)
	GetByFirebaseUID(firebaseUID string) (*models.Account, error)
	GetByProfileID(profileID string) (*models.Account, error)
	Update(account *models.Account) error
}

// PostgresAccountRepository implements AccountRepository for PostgreSQL
type PostgresAccountRepository struct {
	db *gorm.DB
}

// NewPostgresAccountRepository creates a new PostgresAccountRepository
func NewPostgresAccountRepository(db *gorm.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

// Create creates a new account in PostgreSQL
func (r *PostgresAccountRepository) Create(account *models.Account) error {
	return r.db.Create(account).Error
}

// GetByEmail retrieves an account by its unique email
func (r *PostgresAccountRepository) GetByEmail(email string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByFirebaseUID retrieves an account linked to a Firebase user
func (r *PostgresAccountRepository) GetByFirebaseUID(firebaseUID string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("firebase_uid = ?", firebaseUID).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByProfileID retrieves the account owning a profile document
func (r *PostgresAccountRepository) GetByProfileID(profileID string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("profile_id = ?", profileID).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// Update updates an existing account in PostgreSQL
func (r *PostgresAccountRepository) Update(account *models.Account) error {
	return r.db.Save(account).Error
}
