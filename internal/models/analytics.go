package models

// Shapes for the analytics result. Every field is a plain number, string or
// string-keyed mapping so the whole record serializes with a structural dump.

// SpendingCategory labels a user's average order value band.
type SpendingCategory struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

type SpendingAnalytics struct {
	TotalSpent          float64            `json:"total_spent"`
	AverageOrderValue   float64            `json:"average_order_value"`
	MedianOrderValue    float64            `json:"median_order_value"`
	TotalDeliveryFees   float64            `json:"total_delivery_fees"`
	TotalServiceFees    float64            `json:"total_service_fees"`
	TotalVoucherSavings float64            `json:"total_voucher_savings"`
	VoucherUsageRate    float64            `json:"voucher_usage_rate"`
	MonthlySpending     map[string]float64 `json:"monthly_spending"`
	SpendingCategory    SpendingCategory   `json:"spending_category"`
}

// RestaurantCount is one entry of a ranked restaurant list.
type RestaurantCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type LoyaltyAnalysis struct {
	TopRestaurant           string  `json:"top_restaurant"`
	TopRestaurantPercentage float64 `json:"top_restaurant_percentage"`
	Tier                    string  `json:"tier"`
	Description             string  `json:"description"`
}

type RestaurantAnalytics struct {
	UniqueRestaurants     int               `json:"unique_restaurants"`
	TopRestaurantsByOrder []RestaurantCount `json:"top_restaurants_by_orders"`
	LoyaltyAnalysis       LoyaltyAnalysis   `json:"loyalty_analysis"`
}

// ItemCount is one entry of a ranked food item list.
type ItemCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type FoodAnalytics struct {
	TopFoodItems         []ItemCount    `json:"top_food_items"`
	FoodCategories       map[string]int `json:"food_categories"`
	AverageItemsPerOrder float64        `json:"average_items_per_order"`
	TotalUniqueItems     int            `json:"total_unique_items"`
}

type PatternAnalytics struct {
	HourlyPatterns    map[int]int    `json:"hourly_patterns"`
	PeakHour          int            `json:"peak_hour"`
	DailyPatterns     map[string]int `json:"daily_patterns"`
	PeakDay           string         `json:"peak_day"`
	WeekendOrders     int            `json:"weekend_orders"`
	WeekdayOrders     int            `json:"weekday_orders"`
	WeekendPercentage float64        `json:"weekend_percentage"`
}

type PaymentAnalytics struct {
	MethodCounts           map[string]int `json:"method_counts"`
	PreferredPaymentMethod string         `json:"preferred_payment_method"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type PriceAnalytics struct {
	AveragePricePerItem   float64            `json:"average_price_per_item"`
	PriceRange            PriceRange         `json:"price_range"`
	RestaurantValueScores map[string]float64 `json:"restaurant_value_scores"`
	DiscountEffectiveness float64            `json:"discount_effectiveness"`
	PriceTrendOverTime    map[string]float64 `json:"price_trend_over_time"`
}

type OrderSizeDistribution struct {
	Small  int `json:"small"`
	Medium int `json:"medium"`
	Large  int `json:"large"`
}

type BehaviorAnalytics struct {
	OrderSizeDistribution OrderSizeDistribution `json:"order_size_distribution"`
	AverageBasketSize     float64               `json:"average_basket_size"`
	DrinkAddonRate        float64               `json:"drink_addon_rate"`
	DessertAddonRate      float64               `json:"dessert_addon_rate"`
	ExactReorderCount     int                   `json:"exact_reorder_count"`
	SimilarItemsFrequency []ItemCount           `json:"similar_items_frequency"`
}

type DiversityAnalytics struct {
	CuisineSwitchingRate       float64                   `json:"cuisine_switching_rate"`
	NewRestaurantsPerMonth     map[string]int            `json:"new_restaurants_per_month"`
	RestaurantDiscoveryRate    float64                   `json:"restaurant_discovery_rate"`
	CuisinePreferenceEvolution map[string]map[string]int `json:"cuisine_preference_evolution"`
	VarietyScore               float64                   `json:"variety_score"`
}

type TimeGapDistribution struct {
	SameDay     int `json:"same_day"`
	WithinWeek  int `json:"within_week"`
	WithinMonth int `json:"within_month"`
	OverMonth   int `json:"over_month"`
}

type TimeAnalytics struct {
	OrderFrequencyTrend      map[string]int      `json:"order_frequency_trend"`
	AverageDaysBetweenOrders float64             `json:"average_days_between_orders"`
	SpendingByDayOfWeek      map[string]float64  `json:"spending_by_day_of_week"`
	SeasonalPatterns         map[string]float64  `json:"seasonal_patterns"`
	TimeGapDistribution      TimeGapDistribution `json:"time_gap_distribution"`
	OrderingAcceleration     float64             `json:"ordering_acceleration"`
}

type DeliveryFeeVariance struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

type CostOptimizationAnalytics struct {
	FeeToFoodRatio              float64             `json:"fee_to_food_ratio"`
	AverageFeePercentage        float64             `json:"average_fee_percentage"`
	AverageVoucherDiscount      float64             `json:"average_voucher_discount"`
	AvgOrderValueWithVoucher    float64             `json:"avg_order_value_with_voucher"`
	AvgOrderValueWithoutVoucher float64             `json:"avg_order_value_without_voucher"`
	DeliveryFeeVariance         DeliveryFeeVariance `json:"delivery_fee_variance"`
	OptimalOrderValue           float64             `json:"optimal_order_value"`
	PotentialSavings            float64             `json:"potential_savings"`
}

type HealthAnalytics struct {
	HealthyPercentage       float64        `json:"healthy_percentage"`
	IndulgentPercentage     float64        `json:"indulgent_percentage"`
	HealthyVsIndulgentRatio float64        `json:"healthy_vs_indulgent_ratio"`
	MealTypeDistribution    map[string]int `json:"meal_type_distribution"`
	DrinkToFoodRatio        float64        `json:"drink_to_food_ratio"`
}

type PredictiveAnalytics struct {
	ForecastedMonthlySpending float64 `json:"forecasted_monthly_spending"`
	EstimatedAnnualSpending   float64 `json:"estimated_annual_spending"`
	SpendingTrend             string  `json:"spending_trend"`
	TrendPercentage           float64 `json:"trend_percentage"`
	PredictedNextOrderDays    float64 `json:"predicted_next_order_days"`
}

type AdvancedAnalytics struct {
	CustomerLifetimeValue    float64 `json:"customer_lifetime_value"`
	OrderEfficiencyScore     float64 `json:"order_efficiency_score"`
	BrandLoyaltyScore        float64 `json:"brand_loyalty_score"`
	SpontaneityIndex         float64 `json:"spontaneity_index"`
	DealDependencyRatio      float64 `json:"deal_dependency_ratio"`
	ChurnRiskScore           float64 `json:"churn_risk_score"`
	ExplorationPercentage    float64 `json:"exploration_percentage"`
	ExploitationPercentage   float64 `json:"exploitation_percentage"`
}

type ComparativeAnalytics struct {
	SpendingPercentile      float64 `json:"spending_percentile"`
	OrderFrequencyCategory  string  `json:"order_frequency_category"`
	ValueConsciousnessScore float64 `json:"value_consciousness_score"`
}

// Insight categories.
const (
	InsightSpending     = "spending"
	InsightVoucher      = "voucher"
	InsightTiming       = "timing"
	InsightLoyalty      = "loyalty"
	InsightFrequency    = "frequency"
	InsightOptimization = "optimization"
	InsightHealth       = "health"
	InsightPrediction   = "prediction"
	InsightOther        = "other"
)

// Insight is one human-readable narrative finding.
type Insight struct {
	Category            string `json:"category"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	DetailedExplanation string `json:"detailedExplanation"`
	Color               string `json:"color"`
}

// FullAnalytics is the aggregate result of one analysis run. It has no
// identity beyond the call that produced it; callers own caching.
type FullAnalytics struct {
	TotalOrders      int                       `json:"total_orders"`
	Spending         SpendingAnalytics         `json:"spending"`
	Restaurants      RestaurantAnalytics       `json:"restaurants"`
	Food             FoodAnalytics             `json:"food"`
	Patterns         PatternAnalytics          `json:"patterns"`
	Payments         PaymentAnalytics          `json:"payments"`
	Prices           PriceAnalytics            `json:"prices"`
	Behavior         BehaviorAnalytics         `json:"order_behavior"`
	Diversity        DiversityAnalytics        `json:"diversity"`
	TimeAnalysis     TimeAnalytics             `json:"time_analysis"`
	CostOptimization CostOptimizationAnalytics `json:"cost_optimization"`
	HealthDietary    HealthAnalytics           `json:"health_dietary"`
	Predictive       PredictiveAnalytics       `json:"predictive"`
	Advanced         AdvancedAnalytics         `json:"advanced_metrics"`
	Comparative      ComparativeAnalytics      `json:"comparative_metrics"`
	Insights         []Insight                 `json:"insights"`
}
