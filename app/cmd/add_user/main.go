package main

import (
	"fmt"
	"os"

	"github.com/JhonyKing/think-chess-sub001/app/config"
	"github.com/JhonyKing/think-chess-sub001/app/database"
	"github.com/JhonyKing/think-chess-sub001/app/models"
	"github.com/JhonyKing/think-chess-sub001/app/routes/users"
)

// Creates the initial administrator account. Username and password come from
// the command line so no credential lives in the source tree.
func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: add_user <username> <password>")
		os.Exit(1)
	}

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}

	if err := database.Bootstrap(db); err != nil {
		fmt.Printf("Error preparing schema: %v\n", err)
		return
	}

	user := &models.User{
		Username: os.Args[1],
		Password: os.Args[2],
		UserType: "ADMINISTRADOR",
		IsActive: true,
		Permissions: models.Permissions{
			Students:  true,
			Payments:  true,
			Expenses:  true,
			Suppliers: true,
			Schools:   true,
			Courses:   true,
			Users:     true,
			Mail:      true,
			Reports:   true,
			Exports:   true,
			Settings:  true,
		},
	}

	if err := users.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s (%s)\n", user.Username, user.UserType)
}
