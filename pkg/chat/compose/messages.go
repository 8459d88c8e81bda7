package compose

// Reply templates for the storefront chat widget. The widget audience is
// Vietnamese; texts stay in one place so the rendering layer never hardcodes
// copy.
const (
	msgGreeting = "Xin chào! Mình là trợ lý quà tặng. Bạn muốn tìm quà theo dịp, theo loại quà hay theo ngân sách?"

	msgPopular = "Đây là những món quà được ưa chuộng nhất tại shop:"

	msgUnknownCategory = "Mình chưa hiểu bạn muốn tìm loại quà nào. Bạn có thể chọn một trong các danh mục dưới đây nhé:"

	msgEmptyCategory = "Hiện chưa có sản phẩm nào trong danh mục %q. Bạn thử chọn danh mục khác nhé:"

	msgFoundCategory = "Mình tìm được %d món quà trong danh mục %q:"

	msgFoundOccasion = "Quà tặng phù hợp cho dịp %q đây ạ:"

	msgEmptyOccasion = "Tiếc quá, mình chưa tìm thấy món quà nào cho dịp %q. Bạn thử mô tả khác xem sao nhé."

	msgFoundSearch = "Mình tìm thấy %d sản phẩm phù hợp với yêu cầu của bạn:"

	msgFoundBudget = "Trong tầm giá đó, shop có những món quà sau:"

	msgEmptyBudget = "Mình chưa tìm được món quà nào trong tầm giá đó. Bạn thử nới ngân sách một chút nhé."

	msgRecommendation = "Dựa trên thông tin về người nhận, mình gợi ý những món quà sau:"

	msgAskRecipient = "Bạn muốn tặng quà cho ai vậy? Cho mình biết giới tính hoặc độ tuổi của người nhận nhé (ví dụ: \"nữ, 25 tuổi\" hoặc \"bé trai\")."

	msgAskRecipientAgain = "Mình vẫn chưa rõ người nhận. Bạn mô tả giúp mình nhé, ví dụ: \"cho mẹ\", \"bạn nam 30 tuổi\", \"trẻ em\"."

	msgFallback = "Xin lỗi, mình chưa hiểu ý bạn. Bạn có thể tìm theo các danh mục dưới đây:"

	msgUpsell = " Shop cũng có dịch vụ gói quà, phụ kiện trang trí và thiệp kèm lời chúc nếu bạn muốn món quà thêm đặc biệt nhé!"
)
