package services

import (
	"context"
	"log"
	"strings"
	"time"

	"CareSphere/cache"
	"CareSphere/database"
	"CareSphere/models"
	"CareSphere/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// CreateAccount creates an account with the role fixed by the caller
// (addDoctor, addPatient). Same rules as signup otherwise.
func CreateAccount(ctx context.Context, role string, data map[string]interface{}) (*models.Account, error) {
	if data == nil {
		// a JSON null body binds to a nil map
		data = map[string]interface{}{}
	}
	data["role"] = role
	return Signup(ctx, data)
}

/*
* Read through the cache first
* On a miss fetch from mongo and refill
 */
func FetchAccountByID(ctx context.Context, id string) (*models.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.BadRequest("invalid account id")
	}
	key := cache.AccountKey + id
	account := models.Account{}
	if hit, err := cache.Get(ctx, key, &account); err == nil && hit {
		return &account, nil
	} else if err != nil {
		log.Println("Error while reading account cache:", err)
	}

	coll := database.OpenCollection(database.AccountCollection)
	if err := database.FindOne(ctx, coll, bson.M{"_id": oid}, &account); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFound("account not found")
		}
		log.Println("Error while fetching account:", err)
		return nil, utils.Internal("could not fetch account", err)
	}
	if err := cache.Set(ctx, key, &account); err != nil {
		log.Println("Error while caching account:", err)
	}
	return &account, nil
}

func FetchAccountsByRole(ctx context.Context, role string) ([]models.Account, error) {
	if !models.ValidRole(role) {
		return nil, utils.BadRequest("unknown role: " + role)
	}
	coll := database.OpenCollection(database.AccountCollection)
	accounts := []models.Account{}
	opts := options.Find().SetSort(bson.D{{Key: "fullName", Value: 1}})
	if err := database.FindAll(ctx, coll, bson.M{"role": role}, opts, &accounts); err != nil {
		log.Println("Error while listing accounts:", err)
		return nil, utils.Internal("could not list accounts", err)
	}
	return accounts, nil
}

/*
* Partial update: absent fields stay untouched
* Password is rehashed only when a new one is supplied
* Invalidate the cache entry, then refill with the updated document
 */
func UpdateAccount(ctx context.Context, id string, data map[string]interface{}) (*models.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.BadRequest("invalid account id")
	}
	set := bson.M{}
	for _, field := range []string{"fullName", "specialty", "qualification", "department", "address", "phone", "gender"} {
		if err := trimIfExists(data, field); err != nil {
			return nil, err
		}
		if v, ok := data[field].(string); ok {
			set[field] = v
		}
	}
	if err := trimIfExists(data, "email"); err != nil {
		return nil, err
	}
	if v, ok := data["email"].(string); ok {
		set["email"] = strings.ToLower(v)
	}
	if err := trimIfExists(data, "password"); err != nil {
		return nil, err
	}
	if v, ok := data["password"].(string); ok {
		hashed, err := bcrypt.GenerateFromPassword([]byte(v), bcrypt.DefaultCost)
		if err != nil {
			log.Println("Error while hashing password:", err)
			return nil, utils.Internal("could not update account", err)
		}
		set["password"] = string(hashed)
	}
	if len(set) == 0 {
		return nil, utils.BadRequest("no updatable fields supplied")
	}
	set["updatedAt"] = time.Now()

	coll := database.OpenCollection(database.AccountCollection)
	result, err := database.UpdateOne(ctx, coll, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.Conflict("an account with this email already exists")
		}
		log.Println("Error while updating account:", err)
		return nil, utils.Internal("could not update account", err)
	}
	if result.MatchedCount == 0 {
		return nil, utils.NotFound("account not found")
	}
	if err := cache.Delete(ctx, cache.AccountKey+id); err != nil {
		log.Println("Error while invalidating account cache:", err)
	}
	return FetchAccountByID(ctx, id)
}

func DeleteAccount(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.BadRequest("invalid account id")
	}
	coll := database.OpenCollection(database.AccountCollection)
	result, err := database.DeleteOne(ctx, coll, bson.M{"_id": oid})
	if err != nil {
		log.Println("Error while deleting account:", err)
		return utils.Internal("could not delete account", err)
	}
	if result.DeletedCount == 0 {
		return utils.NotFound("account not found")
	}
	if err := cache.Delete(ctx, cache.AccountKey+id); err != nil {
		log.Println("Error while invalidating account cache:", err)
	}
	return nil
}

func DeleteAccountByEmail(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return utils.BadRequest("email is required")
	}
	coll := database.OpenCollection(database.AccountCollection)
	account := models.Account{}
	err := database.FindOne(ctx, coll, bson.M{"email": email}, &account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.NotFound("account not found")
		}
		log.Println("Error while fetching account for delete:", err)
		return utils.Internal("could not delete account", err)
	}
	return DeleteAccount(ctx, account.ID.Hex())
}

// SearchAccounts matches fullName or email case-insensitively, optionally
// restricted to one role.
func SearchAccounts(ctx context.Context, query, role string) ([]models.Account, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, utils.BadRequest("q is required")
	}
	filter := bson.M{
		"$or": []bson.M{
			{"fullName": bson.M{"$regex": query, "$options": "i"}},
			{"email": bson.M{"$regex": query, "$options": "i"}},
		},
	}
	if role != "" {
		if !models.ValidRole(role) {
			return nil, utils.BadRequest("unknown role: " + role)
		}
		filter["role"] = role
	}
	coll := database.OpenCollection(database.AccountCollection)
	accounts := []models.Account{}
	if err := database.FindAll(ctx, coll, filter, nil, &accounts); err != nil {
		log.Println("Error while searching accounts:", err)
		return nil, utils.Internal("could not search accounts", err)
	}
	return accounts, nil
}
