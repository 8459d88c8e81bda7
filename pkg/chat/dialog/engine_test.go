package dialog

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"

	"giftshop-chatbot-be/pkg/catalog"
	"giftshop-chatbot-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	categories []catalog.Category
	occasions  []catalog.Occasion
	products   []catalog.Product
	byCategory map[int64][]catalog.Product
	byOccasion map[int64][]catalog.Product
	hasOptions bool
}

func (f *fakeSource) Categories(context.Context) []catalog.Category { return f.categories }
func (f *fakeSource) Occasions(context.Context) []catalog.Occasion  { return f.occasions }
func (f *fakeSource) Products(context.Context) []catalog.Product    { return f.products }
func (f *fakeSource) ProductsByCategory(_ context.Context, id int64) []catalog.Product {
	return f.byCategory[id]
}
func (f *fakeSource) ProductsByOccasion(_ context.Context, id int64) []catalog.Product {
	return f.byOccasion[id]
}
func (f *fakeSource) HasGiftOptions(context.Context) bool { return f.hasOptions }

func testSource() *fakeSource {
	products := []catalog.Product{
		{Id: 1, Name: "Gấu bông nâu", Price: 350_000, IsActive: true, StockQuantity: 3},
		{Id: 2, Name: "Hoa hồng sáp", Price: 500_000, IsActive: true, StockQuantity: 5},
		{Id: 3, Name: "Đồng hồ gỗ", Price: 1_200_000, IsActive: true, StockQuantity: 1},
		{Id: 4, Name: "Ly sứ đôi", Price: 150_000, IsActive: false, StockQuantity: 2},
	}
	return &fakeSource{
		categories: []catalog.Category{
			{Id: 10, Name: "Gấu bông"},
			{Id: 11, Name: "Hoa"},
		},
		occasions: []catalog.Occasion{
			{Id: 20, Name: "Sinh nhật"},
		},
		products: products,
		byCategory: map[int64][]catalog.Product{
			10: {products[0]},
			11: {products[1]},
		},
		byOccasion: map[int64][]catalog.Product{
			20: {products[0], products[2]},
		},
		hasOptions: true,
	}
}

func newTestEngine(source *fakeSource) *Engine {
	return NewEngine(source, 8, log.New(io.Discard, "", 0))
}

func newTestSession() *store.Session {
	return &store.Session{ID: "s-1", State: store.StateIdle}
}

func TestImmediateRecommendation(t *testing.T) {
	engine := newTestEngine(testSource())
	session := newTestSession()

	result := engine.HandleUtterance(context.Background(), session, "tìm quà cho nam 25 tuổi")

	require.Len(t, result.Messages, 2)
	bot := result.Messages[1]
	assert.Equal(t, store.RoleBot, bot.Role)
	assert.Contains(t, bot.Content, "nam 25 tuổi")
	assert.NotEmpty(t, bot.Products)
	assert.True(t, result.Recommended)
	assert.False(t, result.StateChanged)
	assert.Equal(t, store.StateIdle, session.State)
}

func TestSlotFillingFlow(t *testing.T) {
	engine := newTestEngine(testSource())
	session := newTestSession()
	ctx := context.Background()

	// Advise request without recipient info starts slot-filling.
	result := engine.HandleUtterance(ctx, session, "tư vấn quà giúp mình")
	require.Len(t, result.Messages, 2)
	assert.True(t, result.StateChanged)
	assert.Equal(t, store.StateAwaitingRecipient, session.State)
	assert.Empty(t, result.Messages[1].Products)

	// Noise keeps the question open.
	result = engine.HandleUtterance(ctx, session, "ờm để mình nghĩ đã")
	assert.False(t, result.StateChanged)
	assert.Equal(t, store.StateAwaitingRecipient, session.State)
	assert.False(t, result.Recommended)

	// A recipient answer resolves the slot and resets the state.
	result = engine.HandleUtterance(ctx, session, "cho mẹ")
	require.Len(t, result.Messages, 2)
	assert.True(t, result.StateChanged)
	assert.Equal(t, store.StateIdle, session.State)
	assert.Contains(t, result.Messages[1].Content, "nữ")
	assert.True(t, result.Recommended)

	// Recipient slots are cleared after the recommendation.
	assert.False(t, session.Recipient.HasAny())
}

func TestSlotMergeAcrossTurns(t *testing.T) {
	engine := newTestEngine(testSource())
	session := newTestSession()
	session.State = store.StateAwaitingRecipient
	session.Recipient = store.RecipientInfo{Gender: "male"}

	// Age arrives a turn after the gender; both show in the reply.
	result := engine.HandleUtterance(context.Background(), session, "30 tuổi")
	require.Len(t, result.Messages, 2)
	assert.Contains(t, result.Messages[1].Content, "nam 30 tuổi")
	assert.Equal(t, store.StateIdle, session.State)
}

func TestSlotFillingCarriesBudget(t *testing.T) {
	engine := newTestEngine(testSource())
	session := newTestSession()
	ctx := context.Background()

	// The budget arrives with the advise request, the recipient a turn
	// later; the recommendation honors both.
	engine.HandleUtterance(ctx, session, "tư vấn quà dưới 500k")
	assert.Equal(t, store.StateAwaitingRecipient, session.State)

	result := engine.HandleUtterance(ctx, session, "cho nữ")
	require.Len(t, result.Messages, 2)
	bot := result.Messages[1]
	require.Len(t, bot.Products, 2)
	assert.Equal(t, int64(1), bot.Products[0].Id)
	assert.Equal(t, int64(2), bot.Products[1].Id)
	assert.Equal(t, "", session.LastQuery)
}

func TestPopularityBeatsState(t *testing.T) {
	engine := newTestEngine(testSource())
	session := newTestSession()
	session.State = store.StateAwaitingRecipient

	result := engine.HandleUtterance(context.Background(), session, "sản phẩm bán chạy")

	require.Len(t, result.Messages, 2)
	assert.NotEmpty(t, result.Messages[1].Products)
	// popularity answers without touching the dialogue state
	assert.Equal(t, store.StateAwaitingRecipient, session.State)
	assert.False(t, result.StateChanged)
}

func TestOccasionBeatsCategory(t *testing.T) {
	source := testSource()
	// A category whose name collides with the occasion.
	source.categories = append(source.categories, catalog.Category{Id: 12, Name: "Sinh nhật"})
	engine := newTestEngine(source)
	session := newTestSession()

	result := engine.HandleUtterance(context.Background(), session, "quà sinh nhật")

	require.Len(t, result.Messages, 2)
	bot := result.Messages[1]
	require.NotNil(t, bot.OccasionId)
	assert.Equal(t, int64(20), *bot.OccasionId)
	assert.Nil(t, bot.CategoryId)
}

func TestOccasionWithBudget(t *testing.T) {
	engine := newTestEngine(testSource())
	session := newTestSession()

	result := engine.HandleUtterance(context.Background(), session, "quà sinh nhật dưới 500k")

	require.Len(t, result.Messages, 2)
	bot := result.Messages[1]
	require.Len(t, bot.Products, 1)
	assert.Equal(t, int64(1), bot.Products[0].Id)
}

func TestOccasionWithDateIgnoresDate(t *testing.T) {
	engine := newTestEngine(testSource())
	session := newTestSession()

	// "20/11" is a gift-day date; it must not be read as an 11-20 VND
	// budget that would filter out the whole occasion listing.
	result := engine.HandleUtterance(context.Background(), session, "quà sinh nhật 20/11")

	require.Len(t, result.Messages, 2)
	bot := result.Messages[1]
	require.NotNil(t, bot.OccasionId)
	assert.Equal(t, int64(20), *bot.OccasionId)
	assert.Len(t, bot.Products, 2)
}

func TestCategoryUpsell(t *testing.T) {
	engine := newTestEngine(testSource())
	session := newTestSession()

	result := engine.HandleUtterance(context.Background(), session, "gấu bông")

	require.Len(t, result.Messages, 2)
	bot := result.Messages[1]
	require.NotNil(t, bot.CategoryId)
	assert.Equal(t, int64(10), *bot.CategoryId)
	assert.Contains(t, bot.Content, "gói quà")
}

func TestEmptyCategoryShowsChips(t *testing.T) {
	source := testSource()
	source.byCategory[11] = nil
	engine := newTestEngine(source)
	session := newTestSession()

	result := engine.HandleUtterance(context.Background(), session, "hoa")

	require.Len(t, result.Messages, 2)
	bot := result.Messages[1]
	assert.True(t, bot.ShowCategories)
	assert.Empty(t, bot.Products)
	assert.False(t, result.Recommended)
}

func TestInactiveProductsNeverSurface(t *testing.T) {
	source := testSource()
	engine := newTestEngine(source)
	session := newTestSession()

	result := engine.HandleUtterance(context.Background(), session, "sản phẩm bán chạy")

	require.Len(t, result.Messages, 2)
	for _, p := range result.Messages[1].Products {
		assert.NotEqual(t, int64(4), p.Id, "inactive product leaked into the reply")
	}
}

func TestFallback(t *testing.T) {
	engine := newTestEngine(testSource())
	session := newTestSession()

	result := engine.HandleUtterance(context.Background(), session, "xyzzy plugh")

	require.Len(t, result.Messages, 2)
	bot := result.Messages[1]
	assert.True(t, bot.ShowCategories)
	assert.False(t, result.Recommended)
	assert.False(t, result.StateChanged)
}

func TestDisplayTruncation(t *testing.T) {
	source := testSource()
	engine := NewEngine(source, 2, log.New(io.Discard, "", 0))
	session := newTestSession()

	result := engine.HandleUtterance(context.Background(), session, "sản phẩm bán chạy")

	require.Len(t, result.Messages, 2)
	assert.Len(t, result.Messages[1].Products, 2)
}

func TestDegradedCatalog(t *testing.T) {
	// An empty source stands in for the storefront API being down.
	engine := newTestEngine(&fakeSource{})
	session := newTestSession()

	result := engine.HandleUtterance(context.Background(), session, "tìm quà cho nam 25 tuổi")

	require.Len(t, result.Messages, 2)
	bot := result.Messages[1]
	assert.True(t, strings.Contains(bot.Content, "nam 25 tuổi"))
	assert.Empty(t, bot.Products)
	assert.False(t, result.Recommended)
}

func TestSessionLogGrows(t *testing.T) {
	engine := newTestEngine(testSource())
	session := newTestSession()
	ctx := context.Background()

	engine.HandleUtterance(ctx, session, "gấu bông")
	engine.HandleUtterance(ctx, session, "hoa")

	assert.Len(t, session.Messages, 4)
	assert.Equal(t, store.RoleUser, session.Messages[0].Role)
	assert.Equal(t, store.RoleBot, session.Messages[1].Role)
}
