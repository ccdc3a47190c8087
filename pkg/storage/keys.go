package storage

// Well-known keys shared by the storefront components.
const (
	KeySession     = "userSession"
	KeyCurrentUser = "currentUser"
	KeyAccounts    = "users"
	KeyCart        = "cincoCoffeeCart"
	KeyCartTotal   = "cincoCoffeeTotal"
)
