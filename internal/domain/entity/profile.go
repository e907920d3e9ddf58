package entity

import "time"

// Role es el rol del perfil en el marketplace. Tipo cerrado: solo existen
// farmer (vende) y corporate (compra).
type Role string

const (
	RoleFarmer    Role = "farmer"
	RoleCorporate Role = "corporate"
)

// ParseRole convierte un string a Role. Devuelve false si el valor no es válido.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleFarmer, RoleCorporate:
		return Role(s), true
	}
	return "", false
}

// Profile representa la extensión de la cuenta con rol y datos de contacto.
// El rol se fija en el registro y no se expone para cambio posterior.
type Profile struct {
	ID        string
	UserID    string // uno a uno con User
	Role      Role
	Phone     string
	Address   string
	CreatedAt time.Time
}
