package permissions

import "slices"

// Capability tags that a Post may grant.
const (
	EmployeesCreate = "employees:create"
	EmployeesRead   = "employees:read"
	EmployeesUpdate = "employees:update"
	EmployeesDelete = "employees:delete"

	ClientsCreate = "clients:create"
	ClientsRead   = "clients:read"
	ClientsUpdate = "clients:update"
	ClientsDelete = "clients:delete"

	BookingCreate = "booking:create"
	BookingRead   = "booking:read"
	BookingUpdate = "booking:update"
	BookingDelete = "booking:delete"

	ServicesCreate = "services:create"
	ServicesRead   = "services:read"
	ServicesUpdate = "services:update"
	ServicesDelete = "services:delete"

	RoomsCreate = "rooms:create"
	RoomsRead   = "rooms:read"
	RoomsUpdate = "rooms:update"
	RoomsDelete = "rooms:delete"

	ServiceOrdersCreate = "service_orders:create"
	ServiceOrdersRead   = "service_orders:read"
	ServiceOrdersUpdate = "service_orders:update"
	ServiceOrdersDelete = "service_orders:delete"
)

var catalog = []string{
	EmployeesCreate, EmployeesRead, EmployeesUpdate, EmployeesDelete,
	ClientsCreate, ClientsRead, ClientsUpdate, ClientsDelete,
	BookingCreate, BookingRead, BookingUpdate, BookingDelete,
	ServicesCreate, ServicesRead, ServicesUpdate, ServicesDelete,
	RoomsCreate, RoomsRead, RoomsUpdate, RoomsDelete,
	ServiceOrdersCreate, ServiceOrdersRead, ServiceOrdersUpdate, ServiceOrdersDelete,
}

// All returns a copy of every capability tag.
func All() []string {
	return slices.Clone(catalog)
}

func IsKnown(tag string) bool {
	return slices.Contains(catalog, tag)
}

// GrantsAny reports whether granted holds at least one of required.
// An empty required list is always satisfied.
func GrantsAny(granted, required []string) bool {
	if len(required) == 0 {
		return true
	}

	for _, tag := range required {
		if slices.Contains(granted, tag) {
			return true
		}
	}

	return false
}
