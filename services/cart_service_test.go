package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbonfim/DeliveryApp/entity"
	"github.com/wbonfim/DeliveryApp/pkg/apperr"
)

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "ana", entity.UserTypeCustomer)
	owner := seedUser(t, db, "owner", entity.UserTypeRestaurant)
	rest := seedRestaurant(t, db, owner.ID, 590, 0)
	p := seedProduct(t, db, rest.ID, "Marmita", 1250)

	for _, q := range []int{0, -1, -10} {
		err := svc.AddItem(user.ID, &AddToCartIn{
			RestaurantID: rest.ID, ProductID: p.ID, Quantity: q,
		})
		assert.ErrorIs(t, err, apperr.ErrInvalidQuantity)
	}

	out, err := svc.Get(user.ID, rest.ID)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

func TestAddItemRejectsUnavailableProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "ana", entity.UserTypeCustomer)
	owner := seedUser(t, db, "owner", entity.UserTypeRestaurant)
	rest := seedRestaurant(t, db, owner.ID, 590, 0)

	p := seedProduct(t, db, rest.ID, "Esgotado", 900)
	require.NoError(t, db.Model(p).Update("is_available", false).Error)

	err := svc.AddItem(user.ID, &AddToCartIn{RestaurantID: rest.ID, ProductID: p.ID, Quantity: 1})
	assert.ErrorIs(t, err, apperr.ErrProductUnavailable)
}

func TestAddItemRejectsProductFromAnotherRestaurant(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "ana", entity.UserTypeCustomer)
	owner := seedUser(t, db, "owner", entity.UserTypeRestaurant)
	rest := seedRestaurant(t, db, owner.ID, 590, 0)
	other := seedRestaurant(t, db, owner.ID, 300, 0)
	p := seedProduct(t, db, other.ID, "Alheio", 700)

	err := svc.AddItem(user.ID, &AddToCartIn{RestaurantID: rest.ID, ProductID: p.ID, Quantity: 1})
	assert.ErrorIs(t, err, apperr.ErrProductUnavailable)
}

func TestAddItemSnapshotsPriceAtAddTime(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "ana", entity.UserTypeCustomer)
	owner := seedUser(t, db, "owner", entity.UserTypeRestaurant)
	rest := seedRestaurant(t, db, owner.ID, 590, 0)
	p := seedProduct(t, db, rest.ID, "Marmita", 1250)

	require.NoError(t, svc.AddItem(user.ID, &AddToCartIn{
		RestaurantID: rest.ID, ProductID: p.ID, Quantity: 2,
	}))

	// price change after the fact must not touch the captured line
	require.NoError(t, db.Model(p).Update("price", 9999).Error)

	out, err := svc.Get(user.ID, rest.ID)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(1250), out.Items[0].UnitPrice)
	assert.Equal(t, int64(2500), out.Items[0].TotalPrice)
	assert.Equal(t, int64(2500), out.Total)
}

func TestAddItemMergesSameProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "ana", entity.UserTypeCustomer)
	owner := seedUser(t, db, "owner", entity.UserTypeRestaurant)
	rest := seedRestaurant(t, db, owner.ID, 590, 0)
	p := seedProduct(t, db, rest.ID, "Marmita", 1250)

	require.NoError(t, svc.AddItem(user.ID, &AddToCartIn{RestaurantID: rest.ID, ProductID: p.ID, Quantity: 1}))
	require.NoError(t, svc.AddItem(user.ID, &AddToCartIn{RestaurantID: rest.ID, ProductID: p.ID, Quantity: 2}))

	out, err := svc.Get(user.ID, rest.ID)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 3, out.Items[0].Quantity)
	assert.Equal(t, int64(3750), out.Items[0].TotalPrice)
}

func TestCartsAreScopedPerRestaurant(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "ana", entity.UserTypeCustomer)
	owner := seedUser(t, db, "owner", entity.UserTypeRestaurant)
	restA := seedRestaurant(t, db, owner.ID, 590, 0)
	restB := seedRestaurant(t, db, owner.ID, 300, 0)
	pA := seedProduct(t, db, restA.ID, "Pizza", 4000)
	pB := seedProduct(t, db, restB.ID, "Sushi", 6000)

	require.NoError(t, svc.AddItem(user.ID, &AddToCartIn{RestaurantID: restA.ID, ProductID: pA.ID, Quantity: 1}))
	require.NoError(t, svc.AddItem(user.ID, &AddToCartIn{RestaurantID: restB.ID, ProductID: pB.ID, Quantity: 1}))

	outA, err := svc.Get(user.ID, restA.ID)
	require.NoError(t, err)
	outB, err := svc.Get(user.ID, restB.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(4000), outA.Total)
	assert.Equal(t, int64(6000), outB.Total)

	var count int64
	require.NoError(t, db.Model(&entity.Cart{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestUpdateItemRederivesTotal(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "ana", entity.UserTypeCustomer)
	owner := seedUser(t, db, "owner", entity.UserTypeRestaurant)
	rest := seedRestaurant(t, db, owner.ID, 590, 0)
	p := seedProduct(t, db, rest.ID, "Marmita", 1250)

	require.NoError(t, svc.AddItem(user.ID, &AddToCartIn{RestaurantID: rest.ID, ProductID: p.ID, Quantity: 1}))
	out, err := svc.Get(user.ID, rest.ID)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)

	require.NoError(t, svc.UpdateItem(user.ID, out.Items[0].ID, 5))

	out, err = svc.Get(user.ID, rest.ID)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 5, out.Items[0].Quantity)
	assert.Equal(t, int64(6250), out.Items[0].TotalPrice)
	assert.Equal(t, int64(1250)*int64(out.Items[0].Quantity), out.Items[0].TotalPrice)
}

func TestUpdateItemToZeroRemovesLine(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "ana", entity.UserTypeCustomer)
	owner := seedUser(t, db, "owner", entity.UserTypeRestaurant)
	rest := seedRestaurant(t, db, owner.ID, 590, 0)
	p := seedProduct(t, db, rest.ID, "Marmita", 1250)

	require.NoError(t, svc.AddItem(user.ID, &AddToCartIn{RestaurantID: rest.ID, ProductID: p.ID, Quantity: 2}))
	out, err := svc.Get(user.ID, rest.ID)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)

	require.NoError(t, svc.UpdateItem(user.ID, out.Items[0].ID, 0))

	out, err = svc.Get(user.ID, rest.ID)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, int64(0), out.Total)
}

func TestUpdateItemUnknownLine(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "ana", entity.UserTypeCustomer)

	err := svc.UpdateItem(user.ID, 424242, 3)
	assert.ErrorIs(t, err, apperr.ErrCartItemNotFound)
}

func TestUpdateItemCannotTouchAnotherUsersLine(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	ana := seedUser(t, db, "ana", entity.UserTypeCustomer)
	bia := seedUser(t, db, "bia", entity.UserTypeCustomer)
	owner := seedUser(t, db, "owner", entity.UserTypeRestaurant)
	rest := seedRestaurant(t, db, owner.ID, 590, 0)
	p := seedProduct(t, db, rest.ID, "Marmita", 1250)

	require.NoError(t, svc.AddItem(ana.ID, &AddToCartIn{RestaurantID: rest.ID, ProductID: p.ID, Quantity: 1}))
	out, err := svc.Get(ana.ID, rest.ID)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)

	err = svc.UpdateItem(bia.ID, out.Items[0].ID, 9)
	assert.ErrorIs(t, err, apperr.ErrCartItemNotFound)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "ana", entity.UserTypeCustomer)
	owner := seedUser(t, db, "owner", entity.UserTypeRestaurant)
	rest := seedRestaurant(t, db, owner.ID, 590, 0)
	p := seedProduct(t, db, rest.ID, "Marmita", 1250)

	require.NoError(t, svc.AddItem(user.ID, &AddToCartIn{RestaurantID: rest.ID, ProductID: p.ID, Quantity: 1}))
	out, err := svc.Get(user.ID, rest.ID)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	itemID := out.Items[0].ID

	require.NoError(t, svc.RemoveItem(user.ID, itemID))
	// second removal of the same line is still a success
	require.NoError(t, svc.RemoveItem(user.ID, itemID))

	out, err = svc.Get(user.ID, rest.ID)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

func TestClearCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "ana", entity.UserTypeCustomer)
	owner := seedUser(t, db, "owner", entity.UserTypeRestaurant)
	rest := seedRestaurant(t, db, owner.ID, 590, 0)
	p := seedProduct(t, db, rest.ID, "Marmita", 1250)

	// clearing a cart that never existed succeeds
	require.NoError(t, svc.Clear(user.ID, rest.ID))

	require.NoError(t, svc.AddItem(user.ID, &AddToCartIn{RestaurantID: rest.ID, ProductID: p.ID, Quantity: 2}))
	require.NoError(t, svc.Clear(user.ID, rest.ID))

	out, err := svc.Get(user.ID, rest.ID)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, int64(0), out.Total)

	// a cleared pair starts over with a fresh cart
	require.NoError(t, svc.AddItem(user.ID, &AddToCartIn{RestaurantID: rest.ID, ProductID: p.ID, Quantity: 1}))
	out, err = svc.Get(user.ID, rest.ID)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(1250), out.Total)
}

func TestGetAbsentCartIsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "ana", entity.UserTypeCustomer)
	owner := seedUser(t, db, "owner", entity.UserTypeRestaurant)
	rest := seedRestaurant(t, db, owner.ID, 590, 0)

	out, err := svc.Get(user.ID, rest.ID)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, int64(0), out.Total)
}
