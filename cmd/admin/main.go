package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Mohd-obaidullah/complaint-box/internal/auth"
	"github.com/Mohd-obaidullah/complaint-box/internal/config"
	"github.com/Mohd-obaidullah/complaint-box/internal/models"
	"github.com/Mohd-obaidullah/complaint-box/internal/registry"
	"github.com/Mohd-obaidullah/complaint-box/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewService(db, nil) // No redis needed for the admin CLI

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "migrate":
		if err := storageSvc.Migrate(); err != nil {
			log.Fatalf("Error running migrations: %v", err)
		}
		fmt.Println("Migrations complete.")

	case "add-college":
		if len(os.Args) != 5 {
			fmt.Println("Usage: admin add-college <name> <email> <password>")
			os.Exit(1)
		}
		reg := registry.NewService(storageSvc)
		college, err := reg.Register(os.Args[2], os.Args[3], os.Args[4])
		if err != nil {
			log.Fatalf("Error creating college: %v", err)
		}
		fmt.Printf("College %q created. College code: %s\n", college.Name, college.CollegeCode)

	case "reset-password":
		if len(os.Args) != 5 {
			fmt.Println("Usage: admin reset-password <role> <email> <new-password>")
			os.Exit(1)
		}
		role, err := models.ParseRole(os.Args[2])
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		if err := resetPassword(storageSvc, role, os.Args[3], os.Args[4]); err != nil {
			log.Fatalf("Error resetting password: %v", err)
		}
		fmt.Printf("Password for %s %s has been reset.\n", role, os.Args[3])

	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: admin <migrate|add-college|reset-password> [args]")
	os.Exit(1)
}

// resetPassword is the operator override; it bypasses the token flow.
func resetPassword(s *storage.Service, role models.Role, email, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	switch role {
	case models.RoleStudent:
		student, err := s.GetStudentByEmail(email)
		if err != nil {
			return err
		}
		return s.UpdateStudentPassword(student.ID, hash)
	case models.RoleCollege:
		college, err := s.GetCollegeByEmail(email)
		if err != nil {
			return err
		}
		return s.UpdateCollegePassword(college.ID, hash)
	default:
		staff, err := s.GetStaffByEmail(email)
		if err != nil {
			return err
		}
		return s.UpdateStaffPassword(staff.ID, hash)
	}
}
