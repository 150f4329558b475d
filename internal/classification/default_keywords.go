package classification

import "github.com/Veraticus/chart-mapper/internal/model"

// defaultKeywordRules is ordered so specific balance sheet phrases are tested before
// the broader income statement words that would otherwise shadow them.
func defaultKeywordRules() []model.KeywordRule {
	high, medium, low := model.ConfidenceHigh, model.ConfidenceMedium, model.ConfidenceLow

	return []model.KeywordRule{
		// Equity
		{Keywords: []string{"owner's draw", "owners draw", "owner draw", "drawings", "shareholder distribution", "distributions"}, Field: "ownersDraw", Confidence: high},
		{Keywords: []string{"owner contribution", "owner's contribution", "capital contribution", "owner investment"}, Field: "ownerContributions", Confidence: high},
		{Keywords: []string{"retained earnings"}, Field: "retainedEarnings", Confidence: high},
		{Keywords: []string{"owner's equity", "owners equity", "opening balance equity", "common stock", "capital stock", "paid-in capital", "member equity", "partner equity"}, Field: "ownersEquity", Confidence: medium},

		// Contra assets before the fixed asset and expense words they contain
		{Keywords: []string{"accumulated depreciation", "accumulated amortization", "accum depr", "accum. depr"}, Field: "accumulatedDepreciation", Confidence: high},

		// Liabilities
		{Keywords: []string{"accounts payable", "a/p", "trade payables"}, Field: "ap", Confidence: high},
		{Keywords: []string{"credit card", "amex", "american express", "mastercard", "visa"}, Field: "creditCards", Confidence: high},
		{Keywords: []string{"payroll liabilit", "payroll payable", "wages payable", "accrued payroll", "withholding"}, Field: "payrollLiabilities", Confidence: high},
		{Keywords: []string{"sales tax payable", "sales tax", "gst payable", "vat payable"}, Field: "salesTaxPayable", Confidence: high},
		{Keywords: []string{"deferred revenue", "unearned revenue", "customer deposits"}, Field: "deferredRevenue", Confidence: high},
		{Keywords: []string{"line of credit", "loc payable", "revolving credit"}, Field: "lineOfCredit", Confidence: high},
		{Keywords: []string{"loan payable", "loans payable", "notes payable", "note payable", "mortgage", "long-term debt", "long term debt", "sba loan", "equipment loan"}, Field: "longTermDebt", Confidence: medium},
		{Keywords: []string{"accrued liabilit", "accrued expenses", "accrued interest"}, Field: "accruedLiabilities", Confidence: medium},

		// Assets
		{Keywords: []string{"checking", "savings", "petty cash", "cash on hand", "money market", "bank account", "undeposited funds", "cash"}, Field: "cash", Confidence: high},
		{Keywords: []string{"accounts receivable", "a/r", "trade receivables"}, Field: "ar", Confidence: high},
		{Keywords: []string{"inventory", "stock on hand", "merchandise"}, Field: "inventory", Confidence: high},
		{Keywords: []string{"prepaid"}, Field: "prepaidExpenses", Confidence: high},
		{Keywords: []string{"other current asset", "employee advances", "loans to", "security deposit", "deposits", "receivable"}, Field: "otherCurrentAssets", Confidence: medium},
		{Keywords: []string{"fixed asset", "equipment", "furniture", "machinery", "vehicles", "buildings", "leasehold improvements"}, Field: "fixedAssets", Confidence: medium},
		{Keywords: []string{"goodwill", "intangible"}, Field: "otherAssets", Confidence: low},
		{Keywords: []string{"payable", "liabilit"}, Field: "otherLiabilities", Confidence: low},

		// Cost of goods sold before revenue so "cost of sales" does not read as sales
		{Keywords: []string{"cost of materials", "raw materials", "job materials", "materials"}, Field: "cogsMaterials", Confidence: high},
		{Keywords: []string{"direct labor", "cost of labor", "labor cost", "production wages"}, Field: "cogsLabor", Confidence: high},
		{Keywords: []string{"subcontract", "sub-contract", "contract labor"}, Field: "cogsSubcontractors", Confidence: high},
		{Keywords: []string{"freight", "shipping"}, Field: "cogsFreight", Confidence: medium},
		{Keywords: []string{"cost of goods", "cost of sales", "cost of revenue", "cogs"}, Field: "cogsOther", Confidence: medium},

		// Revenue
		{Keywords: []string{"sales discount", "sales returns", "returns and allowances", "refunds"}, Field: "discountsReturns", Confidence: medium},
		{Keywords: []string{"interest income", "interest earned"}, Field: "interestIncome", Confidence: high},
		{Keywords: []string{"service revenue", "service income", "consulting income", "fees earned"}, Field: "serviceRevenue", Confidence: high},
		{Keywords: []string{"other income", "misc income", "miscellaneous income", "rental income", "gain on"}, Field: "otherIncome", Confidence: medium},
		{Keywords: []string{"sales", "revenue", "product income"}, Field: "revenue", Confidence: high},

		// Operating expenses
		{Keywords: []string{"payroll tax", "employer taxes", "fica", "futa", "suta", "medicare", "social security"}, Field: "payrollTaxes", Confidence: high},
		{Keywords: []string{"health insurance", "employee benefits", "401k", "401(k)", "retirement plan", "workers comp"}, Field: "employeeBenefits", Confidence: high},
		{Keywords: []string{"salaries", "wages", "payroll", "officer compensation", "bonus"}, Field: "salaries", Confidence: high},
		{Keywords: []string{"rent expense", "office rent", "lease expense", "rent"}, Field: "rent", Confidence: high},
		{Keywords: []string{"utilities", "gas & electric", "electric", "water"}, Field: "utilities", Confidence: high},
		{Keywords: []string{"insurance"}, Field: "insurance", Confidence: high},
		{Keywords: []string{"software", "subscription", "saas"}, Field: "software", Confidence: medium},
		{Keywords: []string{"vehicle expense", "auto expense", "automobile", "fuel", "gas & oil", "mileage", "parking"}, Field: "vehicle", Confidence: high},
		{Keywords: []string{"telephone", "cell phone", "phone", "internet", "mobile"}, Field: "telephone", Confidence: high},
		{Keywords: []string{"advertising", "marketing", "promotion", "website"}, Field: "marketing", Confidence: high},
		{Keywords: []string{"professional fees", "accounting fees", "legal", "attorney", "bookkeeping", "consulting", "audit"}, Field: "professionalFees", Confidence: high},
		{Keywords: []string{"travel", "airfare", "lodging", "hotel"}, Field: "travel", Confidence: high},
		{Keywords: []string{"meals", "entertainment", "dining"}, Field: "meals", Confidence: high},
		{Keywords: []string{"repairs", "maintenance", "janitorial", "cleaning"}, Field: "repairsMaintenance", Confidence: high},
		{Keywords: []string{"bank charge", "bank fee", "service charge", "merchant fee", "merchant account", "processing fees"}, Field: "bankFees", Confidence: high},
		{Keywords: []string{"interest expense", "loan interest", "finance charge"}, Field: "interestExpense", Confidence: high},
		{Keywords: []string{"depreciation", "amortization"}, Field: "depreciation", Confidence: high},
		{Keywords: []string{"taxes & licenses", "licenses", "permits", "property tax", "franchise tax", "tax"}, Field: "taxesLicenses", Confidence: medium},
		{Keywords: []string{"office supplies", "office expense", "postage", "printing", "stationery", "office"}, Field: "officeExpenses", Confidence: medium},
		{Keywords: []string{"miscellaneous expense", "misc expense", "other expense", "penalties", "donations", "charitable"}, Field: "otherExpense", Confidence: low},
	}
}
