package domain

// SeedData describes the roles and accounts written into the store on first
// startup. Passwords are plaintext here and hashed on the way in.
type SeedData struct {
	Roles []string
	Users []SeedUser
}

type SeedUser struct {
	Email    string
	FullName string
	Password string
	Roles    []string // role names assigned after creation
}

// DefaultSeed returns the development dataset: the standard role hierarchy,
// the demo accounts, and the two accounts previously hard-coded into the
// access-control middleware, all written through the same store.
func DefaultSeed() SeedData {
	return SeedData{
		Roles: []string{"USER", "MANAGER", "ADMIN", "SUPER_ADMIN"},
		Users: []SeedUser{
			{
				Email:    "marco.braun2013@gmail.com",
				FullName: "Marco Braun",
				Password: "1234",
				Roles:    []string{"USER", "MANAGER", "ADMIN", "SUPER_ADMIN"},
			},
			{
				Email:    "yannick.seppich@gmx.de",
				FullName: "Yannick Seppich",
				Password: "1234",
				Roles:    []string{"USER"},
			},
			{
				Email:    "rainer.dirkmann@icloud.com",
				FullName: "Rainer Dirkmann",
				Password: "1234",
				Roles:    []string{"USER"},
			},
			{
				Email:    "miriam.hansel@yahoo.com",
				FullName: "Miriam Hansel",
				Password: "1234",
				Roles:    []string{"USER"},
			},
			{
				Email:    "josephin.wolf@icloud.com",
				FullName: "Josehphin Wolf",
				Password: "1234",
				Roles:    []string{"USER"},
			},
			{
				Email:    "manuel.engelmann@gmail.com",
				FullName: "Manuel Engelmann",
				Password: "1234",
				Roles:    []string{"USER"},
			},
			{
				Email:    "user@localhost",
				FullName: "Default User",
				Password: "password",
				Roles:    []string{"USER"},
			},
			{
				Email:    "admin@localhost",
				FullName: "Default Admin",
				Password: "password",
				Roles:    []string{"ADMIN"},
			},
		},
	}
}
