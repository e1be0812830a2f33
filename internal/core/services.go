package core

type Services struct {
	Auth     *AuthService
	Customer *CustomerService
}

func NewServices(db DB, jwtSecret, jwtIssuer string) *Services {
	return &Services{
		Auth:     NewAuthService(jwtSecret, jwtIssuer),
		Customer: NewCustomerService(db),
	}
}
