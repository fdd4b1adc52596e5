package backend

// Currency values as the backend reports them.
const (
	CurrencyLocal = "$U"
	CurrencyUSD   = "USD"
)

// Approval probability tiers as the backend reports them.
const (
	ProbabilityHigh   = "alta"
	ProbabilityMedium = "media"
	ProbabilityLow    = "baja"
)

// Loan is a single loan offer from the catalog.
type Loan struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Institution    string   `json:"institution"`
	Amount         float64  `json:"amount"`
	Currency       string   `json:"currency"`
	Rate           float64  `json:"rate"`
	Term           int      `json:"term"`
	MonthlyPayment float64  `json:"monthlyPayment"`
	Probability    string   `json:"probability"`
	Features       []string `json:"features"`
}

// CreditCard is a single credit card offer from the catalog.
type CreditCard struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Issuer         string   `json:"issuer"`
	Network        string   `json:"network"`
	Limit          float64  `json:"limit"`
	Currency       string   `json:"currency"`
	AnnualFee      float64  `json:"annualFee"`
	Benefits       []string `json:"benefits"`
	Recommendation string   `json:"recommendation"`
}

// Insurance is a single insurance product.
type Insurance struct {
	ID             int      `json:"id"`
	Type           string   `json:"type"`
	Provider       string   `json:"provider"`
	Coverage       string   `json:"coverage"`
	MonthlyPremium float64  `json:"monthlyPremium"`
	Features       []string `json:"features"`
}

// Guarantee is a rental guarantee option.
type Guarantee struct {
	ID           int      `json:"id"`
	Type         string   `json:"type"`
	Provider     string   `json:"provider"`
	Coverage     string   `json:"coverage"`
	Requirements []string `json:"requirements"`
	MonthlyFee   float64  `json:"monthlyFee"`
	AnnualFee    float64  `json:"annualFee,omitempty"`
	Description  string   `json:"description"`
}

// Benefit is a discount or perk tied to financial products.
type Benefit struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Discount    string `json:"discount"`
	Category    string `json:"category"`
	ValidUntil  string `json:"validUntil"`
}

// CreditFactor is one scored component of a credit profile.
type CreditFactor struct {
	Score       int    `json:"score"`
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
}

// CreditProfile is the user's aggregated credit standing.
type CreditProfile struct {
	Score       int    `json:"score"`
	Rating      string `json:"rating"`
	LastUpdated string `json:"lastUpdated"`
	Factors     struct {
		PaymentHistory    CreditFactor `json:"paymentHistory"`
		CreditUtilization CreditFactor `json:"creditUtilization"`
		AccountAge        CreditFactor `json:"accountAge"`
		CreditMix         CreditFactor `json:"creditMix"`
		RecentInquiries   CreditFactor `json:"recentInquiries"`
	} `json:"factors"`
	Recommendations []string `json:"recommendations"`
}

// CreditQuery is one entry in the credit inquiry history.
type CreditQuery struct {
	ID      int     `json:"id"`
	Company string  `json:"company"`
	Date    string  `json:"date"`
	Type    string  `json:"type"`
	Reason  string  `json:"reason"`
	Impact  float64 `json:"impact"`
	Status  string  `json:"status"`
}

// ChartDataPoint is one month of score or utilization history.
type ChartDataPoint struct {
	Month       string  `json:"month"`
	Score       int     `json:"score,omitempty"`
	Utilization float64 `json:"utilization,omitempty"`
}

// ChartData carries credit score history for charting.
type ChartData struct {
	ScoreHistory       []ChartDataPoint `json:"scoreHistory"`
	UtilizationHistory []ChartDataPoint `json:"utilizationHistory"`
}

// FinancialTool is an external calculator or helper linked by the platform.
type FinancialTool struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Link        string `json:"link"`
}

// HealthStatus is the backend liveness report.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Collection envelopes as returned by the backend, keyed by the plural
// resource name.

type loansResponse struct {
	Loans []Loan `json:"loans"`
}

type creditCardsResponse struct {
	CreditCards []CreditCard `json:"creditCards"`
}

type insurancesResponse struct {
	Insurances []Insurance `json:"insurances"`
}

type guaranteesResponse struct {
	Guarantees []Guarantee `json:"guarantees"`
}

type benefitsResponse struct {
	Benefits []Benefit `json:"benefits"`
}

type creditQueriesResponse struct {
	Queries []CreditQuery `json:"queries"`
}

type financialToolsResponse struct {
	Tools []FinancialTool `json:"tools"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success      bool   `json:"success"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	Message      string `json:"message"`
	User         struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Name     string `json:"name"`
		Email    string `json:"email"`
	} `json:"user"`
}
