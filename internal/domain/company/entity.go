package company

import "time"

// Company entity. A company belongs to exactly one user; the owner is fixed at
// construction and there is no setter for it.
type Company struct {
	id        int64
	name      Name
	cnpj      CNPJ
	address   string
	phone     string
	email     string
	ownerID   int64
	createdAt time.Time
	updatedAt time.Time
}

func New(name Name, cnpj CNPJ, address, phone, email string, ownerID int64) (*Company, error) {
	if ownerID == 0 {
		return nil, ErrMissingOwner
	}
	return &Company{
		name:    name,
		cnpj:    cnpj,
		address: address,
		phone:   phone,
		email:   email,
		ownerID: ownerID,
	}, nil
}

func (c *Company) ID() int64            { return c.id }
func (c *Company) Name() Name           { return c.name }
func (c *Company) CNPJ() CNPJ           { return c.cnpj }
func (c *Company) Address() string      { return c.address }
func (c *Company) Phone() string        { return c.phone }
func (c *Company) Email() string        { return c.email }
func (c *Company) OwnerID() int64       { return c.ownerID }
func (c *Company) CreatedAt() time.Time { return c.createdAt }
func (c *Company) UpdatedAt() time.Time { return c.updatedAt }
