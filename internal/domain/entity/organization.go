package entity

import "time"

// Tipos de negocio soportados.
const (
	OrgTypeRestaurant = "restaurant"
	OrgTypeLanchonete = "lanchonete"
	OrgTypeCafeteria  = "cafeteria"
	OrgTypePizzeria   = "pizzaria"
	OrgTypeOther      = "other"
)

// Organization es la frontera multi-tenant: todo producto, movimiento, receta
// y proveedor pertenece exactamente a una organización. Ninguna operación del
// núcleo cruza organizaciones.
type Organization struct {
	ID        string
	Name      string
	Type      string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
