package controller

import (
	"giftshop-chatbot-be/internal/pkg/serverutils"
	"giftshop-chatbot-be/internal/service"
	"giftshop-chatbot-be/pkg/catalog"

	"github.com/gofiber/fiber/v2"
)

// ICatalogController proxies storefront reference data for the chat widget's
// quick-reply chips.
type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	GetCategories(ctx *fiber.Ctx) error
	GetOccasions(ctx *fiber.Ctx) error
	GetProducts(ctx *fiber.Ctx) error
	GetGiftOptions(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("categories", c.GetCategories)
	h.Get("occasions", c.GetOccasions)
	h.Get("products", c.GetProducts)
	h.Get("gift-options", c.GetGiftOptions)
}

func (c *catalogController) GetCategories(ctx *fiber.Ctx) error {
	res, err := c.catalogService.GetCategories(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get categories", res))
}

func (c *catalogController) GetOccasions(ctx *fiber.Ctx) error {
	res, err := c.catalogService.GetOccasions(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get occasions", res))
}

func (c *catalogController) GetProducts(ctx *fiber.Ctx) error {
	categoryId := int64(ctx.QueryInt("category_id", 0))
	occasionId := int64(ctx.QueryInt("occasion_id", 0))

	res, err := c.catalogService.GetProducts(ctx.Context(), categoryId, occasionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get products", res))
}

func (c *catalogController) GetGiftOptions(ctx *fiber.Ctx) error {
	kind := catalog.GiftOptionKind(ctx.Query("kind", string(catalog.GiftOptionWrappingPaper)))

	res, err := c.catalogService.GetGiftOptions(ctx.Context(), kind)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get gift options", res))
}
