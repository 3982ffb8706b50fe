package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"guesthouse/internal/database"
	"guesthouse/internal/domain"
	"guesthouse/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	ctx := context.Background()

	db, err := database.Connect("guesthouse.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM guesthouses")
	db.Exec("DELETE FROM users")

	repos := repository.New(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	hostHash, _ := bcrypt.GenerateFromPassword([]byte("host1234"), bcrypt.DefaultCost)
	host := domain.User{
		Username:    "seaside-host",
		LoginID:     "host@guesthouse.kr",
		Password:    string(hostHash),
		Role:        domain.RoleHost,
		PhoneNumber: "010-1111-2222",
	}
	if err := repos.Users.Create(ctx, &host); err != nil {
		log.Fatal(err)
	}
	log.Println("Host created: host@guesthouse.kr / host1234")

	guests := make([]domain.User, 0, 3)
	for i := 1; i <= 3; i++ {
		hash, _ := bcrypt.GenerateFromPassword([]byte("guest1234"), bcrypt.DefaultCost)
		g := domain.User{
			Username:    fmt.Sprintf("guest%d", i),
			LoginID:     fmt.Sprintf("guest%d@mail.com", i),
			Password:    string(hash),
			Role:        domain.RoleGuest,
			PhoneNumber: fmt.Sprintf("010-3333-44%02d", i),
		}
		if err := repos.Users.Create(ctx, &g); err != nil {
			log.Fatal(err)
		}
		guests = append(guests, g)
	}
	log.Println("Guests created: guest1@mail.com ... guest3@mail.com / guest1234")

	// ================== GUESTHOUSES ==================
	log.Println("Creating guesthouses...")

	sea := domain.Guesthouse{
		HostID:      host.ID,
		Name:        "Sea View Guesthouse",
		Description: "A quiet place right on the beach",
		Address:     "12 Haeundae-ro, Busan",
		PhoneNumber: "051-123-4567",
		RoomCount:   2,
	}
	if err := repos.Guesthouses.Create(ctx, &sea); err != nil {
		log.Fatal(err)
	}

	hill := domain.Guesthouse{
		HostID:      host.ID,
		Name:        "Hilltop Stay",
		Description: "Mountain views and hiking trails nearby",
		Address:     "3 Namsan-gil, Seoul",
		PhoneNumber: "02-987-6543",
		RoomCount:   1,
	}
	if err := repos.Guesthouses.Create(ctx, &hill); err != nil {
		log.Fatal(err)
	}

	// ================== ROOMS ==================
	log.Println("Creating rooms...")

	rooms := []domain.Room{
		{GuesthouseID: sea.ID, Name: "Ocean Double", Capacity: 2, Price: 80000},
		{GuesthouseID: sea.ID, Name: "Family Suite", Capacity: 4, Price: 140000},
		{GuesthouseID: hill.ID, Name: "Forest Twin", Capacity: 2, Price: 60000},
	}
	for i := range rooms {
		if err := repos.Rooms.Create(ctx, &rooms[i]); err != nil {
			log.Fatal(err)
		}
	}

	// ================== RESERVATIONS ==================
	log.Println("Creating reservations...")

	today := domain.DateOnly(time.Now())

	past := domain.Reservation{
		RoomID:       rooms[0].ID,
		GuestID:      guests[0].ID,
		CheckInDate:  today.AddDate(0, 0, -10),
		CheckOutDate: today.AddDate(0, 0, -7),
		PeopleCount:  2,
	}
	if err := repos.Reservations.Create(ctx, &past); err != nil {
		log.Fatal(err)
	}

	upcoming := domain.Reservation{
		RoomID:       rooms[1].ID,
		GuestID:      guests[1].ID,
		CheckInDate:  today.AddDate(0, 0, 5),
		CheckOutDate: today.AddDate(0, 0, 8),
		PeopleCount:  3,
	}
	if err := repos.Reservations.Create(ctx, &upcoming); err != nil {
		log.Fatal(err)
	}

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")

	rv := domain.Review{
		ReservationID: past.ID,
		Rating:        5,
		Comment:       "Woke up to the sound of waves. Perfect stay.",
	}
	if err := repos.Reviews.Create(ctx, &rv); err != nil {
		log.Fatal(err)
	}
	if err := repos.Guesthouses.UpdateRating(ctx, sea.ID, domain.AverageRating([]int{rv.Rating})); err != nil {
		log.Fatal(err)
	}

	log.Println("Seed completed!")
	log.Println("Host: host@guesthouse.kr / host1234")
	log.Println("Guests: guest1@mail.com ... guest3@mail.com / guest1234")
}
