package classification

import "github.com/Veraticus/chart-mapper/internal/model"

// DefaultVersion identifies the revision of the built-in rule tables.
const DefaultVersion = "2024.2"

func defaultCodeRanges() []model.CodeRange {
	high, medium, low := model.ConfidenceHigh, model.ConfidenceMedium, model.ConfidenceLow

	return []model.CodeRange{
		// Assets
		{Low: 1000, High: 1099, Field: "cash", Confidence: high, Label: "Cash"},
		{Low: 1100, High: 1199, Field: "ar", Confidence: high, Label: "Accounts Receivable"},
		{Low: 1200, High: 1299, Field: "inventory", Confidence: high, Label: "Inventory"},
		{Low: 1300, High: 1399, Field: "prepaidExpenses", Confidence: medium, Label: "Prepaid Expenses"},
		{Low: 1400, High: 1499, Field: "otherCurrentAssets", Confidence: medium, Label: "Other Current Assets"},
		{Low: 1500, High: 1699, Field: "fixedAssets", Confidence: high, Label: "Fixed Assets"},
		{Low: 1700, High: 1799, Field: "accumulatedDepreciation", Confidence: high, Label: "Accumulated Depreciation"},
		{Low: 1800, High: 1999, Field: "otherAssets", Confidence: medium, Label: "Other Assets"},

		// Liabilities
		{Low: 2000, High: 2099, Field: "ap", Confidence: high, Label: "Accounts Payable"},
		{Low: 2100, High: 2199, Field: "creditCards", Confidence: high, Label: "Credit Cards"},
		{Low: 2200, High: 2299, Field: "accruedLiabilities", Confidence: medium, Label: "Accrued Liabilities"},
		{Low: 2300, High: 2399, Field: "payrollLiabilities", Confidence: high, Label: "Payroll Liabilities"},
		{Low: 2400, High: 2499, Field: "salesTaxPayable", Confidence: high, Label: "Sales Tax Payable"},
		{Low: 2500, High: 2599, Field: "deferredRevenue", Confidence: medium, Label: "Deferred Revenue"},
		{Low: 2600, High: 2699, Field: "lineOfCredit", Confidence: medium, Label: "Line of Credit"},
		{Low: 2700, High: 2899, Field: "longTermDebt", Confidence: high, Label: "Long-Term Debt"},
		{Low: 2900, High: 2999, Field: "otherLiabilities", Confidence: low, Label: "Other Liabilities"},

		// Equity
		{Low: 3000, High: 3099, Field: "ownersEquity", Confidence: medium, Label: "Owner's Equity"},
		{Low: 3100, High: 3199, Field: "ownerContributions", Confidence: medium, Label: "Owner Contributions"},
		{Low: 3200, High: 3299, Field: "ownersDraw", Confidence: medium, Label: "Owner's Draw"},
		{Low: 3300, High: 3399, Field: "retainedEarnings", Confidence: high, Label: "Retained Earnings"},
		{Low: 3400, High: 3999, Field: "ownersEquity", Confidence: low, Label: "Equity"},

		// Revenue
		{Low: 4000, High: 4799, Field: "revenue", Confidence: high, Label: "Sales Revenue"},
		{Low: 4800, High: 4899, Field: "discountsReturns", Confidence: medium, Label: "Discounts & Returns"},
		{Low: 4900, High: 4999, Field: "otherIncome", Confidence: medium, Label: "Other Income"},

		// Cost of goods sold
		{Low: 5000, High: 5099, Field: "cogsMaterials", Confidence: high, Label: "Cost of Materials"},
		{Low: 5100, High: 5199, Field: "cogsLabor", Confidence: high, Label: "Direct Labor"},
		{Low: 5200, High: 5299, Field: "cogsSubcontractors", Confidence: high, Label: "Subcontractors"},
		{Low: 5300, High: 5399, Field: "cogsFreight", Confidence: medium, Label: "Freight In"},
		{Low: 5400, High: 5999, Field: "cogsOther", Confidence: medium, Label: "Cost of Goods Sold"},

		// Operating expenses. Numbering varies between charts, so confidence stays lower.
		{Low: 6000, High: 6099, Field: "salaries", Confidence: medium, Label: "Salaries & Wages"},
		{Low: 6100, High: 6199, Field: "payrollTaxes", Confidence: medium, Label: "Payroll Taxes"},
		{Low: 6200, High: 6299, Field: "employeeBenefits", Confidence: medium, Label: "Employee Benefits"},
		{Low: 6300, High: 6399, Field: "rent", Confidence: medium, Label: "Rent"},
		{Low: 6400, High: 6499, Field: "utilities", Confidence: medium, Label: "Utilities"},
		{Low: 6500, High: 6599, Field: "insurance", Confidence: medium, Label: "Insurance"},
		{Low: 6600, High: 6699, Field: "officeExpenses", Confidence: medium, Label: "Office Expenses"},
		{Low: 6700, High: 6799, Field: "marketing", Confidence: medium, Label: "Marketing"},
		{Low: 6800, High: 6899, Field: "professionalFees", Confidence: medium, Label: "Professional Fees"},
		{Low: 6900, High: 6999, Field: "travel", Confidence: medium, Label: "Travel"},
		{Low: 7000, High: 7099, Field: "vehicle", Confidence: low, Label: "Vehicle"},
		{Low: 7100, High: 7199, Field: "repairsMaintenance", Confidence: low, Label: "Repairs & Maintenance"},
		{Low: 7200, High: 7299, Field: "depreciation", Confidence: low, Label: "Depreciation"},
		{Low: 7300, High: 7999, Field: "otherExpense", Confidence: low, Label: "Operating Expenses"},

		// Other income and expense
		{Low: 8000, High: 8499, Field: "otherIncome", Confidence: low, Label: "Other Income"},
		{Low: 8500, High: 8999, Field: "interestExpense", Confidence: low, Label: "Interest Expense"},
		{Low: 9000, High: 9999, Field: "otherExpense", Confidence: low, Label: "Other Expense"},
	}
}
