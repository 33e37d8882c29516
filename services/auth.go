package services

import (
	"context"
	"log"
	"strings"
	"time"

	"CareSphere/database"
	"CareSphere/middleware"
	"CareSphere/models"
	"CareSphere/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

/*
* Validate the signup fields
* Hash the password, never persist plaintext
* Save into the single account collection; the unique email index is the
* authoritative duplicate check, the pre-read only gives a friendlier error
 */
func Signup(ctx context.Context, data map[string]interface{}) (*models.Account, error) {
	fullName, err := getTrimmedString(data, "fullName")
	if err != nil {
		return nil, err
	}
	email, err := getTrimmedString(data, "email")
	if err != nil {
		return nil, err
	}
	password, err := getTrimmedString(data, "password")
	if err != nil {
		return nil, err
	}
	role, err := getTrimmedString(data, "role")
	if err != nil {
		return nil, err
	}
	if !models.ValidRole(role) {
		return nil, utils.BadRequest("unknown role: " + role)
	}
	email = strings.ToLower(email)

	coll := database.OpenCollection(database.AccountCollection)
	existing := models.Account{}
	err = database.FindOne(ctx, coll, bson.M{"email": email}, &existing)
	if err == nil {
		return nil, utils.Conflict("an account with this email already exists")
	}
	if err != mongo.ErrNoDocuments {
		log.Println("Error while checking for existing email:", err)
		return nil, utils.Internal("could not create account", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Error while hashing password:", err)
		return nil, utils.Internal("could not create account", err)
	}

	now := time.Now()
	account := &models.Account{
		FullName:      fullName,
		Email:         email,
		Password:      string(hashed),
		Role:          role,
		Specialty:     stringOr(data, "specialty", ""),
		Qualification: stringOr(data, "qualification", ""),
		Department:    stringOr(data, "department", ""),
		Address:       stringOr(data, "address", ""),
		Phone:         stringOr(data, "phone", ""),
		Gender:        stringOr(data, "gender", ""),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	result, err := database.CreateOne(ctx, coll, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.Conflict("an account with this email already exists")
		}
		log.Println("Error while inserting account:", err)
		return nil, utils.Internal("could not create account", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		account.ID = oid
	}
	return account, nil
}

/*
* Look the account up by email and compare the bcrypt hash
* A wrong email and a wrong password return the same Unauthorized message
* Issue a signed token carrying id, role and email
 */
func Login(ctx context.Context, data map[string]interface{}) (string, *models.Account, error) {
	email, err := getTrimmedString(data, "email")
	if err != nil {
		return "", nil, err
	}
	password, err := getTrimmedString(data, "password")
	if err != nil {
		return "", nil, err
	}
	email = strings.ToLower(email)

	coll := database.OpenCollection(database.AccountCollection)
	account := models.Account{}
	err = database.FindOne(ctx, coll, bson.M{"email": email}, &account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", nil, utils.Unauthorized("invalid email or password")
		}
		log.Println("Error while fetching account for login:", err)
		return "", nil, utils.Internal("could not log in", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return "", nil, utils.Unauthorized("invalid email or password")
	}
	token, err := middleware.IssueToken(cfg.JWTSecret, cfg.JWTTTL, &account)
	if err != nil {
		log.Println("Error while issuing token:", err)
		return "", nil, utils.Internal("could not log in", err)
	}
	return token, &account, nil
}
