package constants

// 商品排序常量
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
)

// 商品标签筛选常量
const (
	FilterFeatured = "featured"
	FilterTrending = "trending"
	FilterNew      = "new"
	FilterSale     = "sale"
)

// 分类筛选哨兵值：表示不过滤
const CategoryAll = "all"

// 支付方式常量（结算表单，仅模拟）
const (
	PaymentMethodCreditCard = "credit-card"
	PaymentMethodPaypal     = "paypal"
	PaymentMethodApplePay   = "apple-pay"
)

// 队列名称常量
const (
	QueueDefault = "default"
)

// 异步任务类型常量
const (
	TaskOrderConfirmation = "order:confirmation"
)

// 订单号前缀
const OrderNumberPrefix = "STH"
