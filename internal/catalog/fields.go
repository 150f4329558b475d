package catalog

import "github.com/Veraticus/chart-mapper/internal/model"

var defaultFields = []model.CanonicalField{
	// Revenue
	{ID: "revenue", Section: model.SectionRevenue, Label: "Revenue"},
	{ID: "serviceRevenue", Section: model.SectionRevenue, Label: "Service Revenue"},
	{ID: "discountsReturns", Section: model.SectionRevenue, Label: "Discounts & Returns"},
	{ID: "otherIncome", Section: model.SectionRevenue, Label: "Other Income"},
	{ID: "interestIncome", Section: model.SectionRevenue, Label: "Interest Income"},

	// Cost of goods sold
	{ID: "cogsMaterials", Section: model.SectionCOGS, Label: "COGS - Materials"},
	{ID: "cogsLabor", Section: model.SectionCOGS, Label: "COGS - Labor"},
	{ID: "cogsSubcontractors", Section: model.SectionCOGS, Label: "COGS - Subcontractors"},
	{ID: "cogsFreight", Section: model.SectionCOGS, Label: "COGS - Freight"},
	{ID: "cogsOther", Section: model.SectionCOGS, Label: "COGS - Other"},

	// Operating expenses
	{ID: "salaries", Section: model.SectionOperatingExpense, Label: "Salaries & Wages"},
	{ID: "payrollTaxes", Section: model.SectionOperatingExpense, Label: "Payroll Taxes"},
	{ID: "employeeBenefits", Section: model.SectionOperatingExpense, Label: "Employee Benefits"},
	{ID: "rent", Section: model.SectionOperatingExpense, Label: "Rent"},
	{ID: "utilities", Section: model.SectionOperatingExpense, Label: "Utilities"},
	{ID: "insurance", Section: model.SectionOperatingExpense, Label: "Insurance"},
	{ID: "officeExpenses", Section: model.SectionOperatingExpense, Label: "Office Expenses"},
	{ID: "software", Section: model.SectionOperatingExpense, Label: "Software & Subscriptions"},
	{ID: "telephone", Section: model.SectionOperatingExpense, Label: "Telephone & Internet"},
	{ID: "marketing", Section: model.SectionOperatingExpense, Label: "Marketing & Advertising"},
	{ID: "professionalFees", Section: model.SectionOperatingExpense, Label: "Professional Fees"},
	{ID: "travel", Section: model.SectionOperatingExpense, Label: "Travel"},
	{ID: "meals", Section: model.SectionOperatingExpense, Label: "Meals & Entertainment"},
	{ID: "vehicle", Section: model.SectionOperatingExpense, Label: "Vehicle Expenses"},
	{ID: "repairsMaintenance", Section: model.SectionOperatingExpense, Label: "Repairs & Maintenance"},
	{ID: "bankFees", Section: model.SectionOperatingExpense, Label: "Bank & Merchant Fees"},
	{ID: "taxesLicenses", Section: model.SectionOperatingExpense, Label: "Taxes & Licenses"},
	{ID: "depreciation", Section: model.SectionOperatingExpense, Label: "Depreciation & Amortization"},
	{ID: "interestExpense", Section: model.SectionOperatingExpense, Label: "Interest Expense"},
	{ID: "otherExpense", Section: model.SectionOperatingExpense, Label: "Other Expense"},

	// Assets
	{ID: "cash", Section: model.SectionAsset, Label: "Cash"},
	{ID: "ar", Section: model.SectionAsset, Label: "Accounts Receivable"},
	{ID: "inventory", Section: model.SectionAsset, Label: "Inventory"},
	{ID: "prepaidExpenses", Section: model.SectionAsset, Label: "Prepaid Expenses"},
	{ID: "otherCurrentAssets", Section: model.SectionAsset, Label: "Other Current Assets"},
	{ID: "fixedAssets", Section: model.SectionAsset, Label: "Fixed Assets"},
	{ID: "accumulatedDepreciation", Section: model.SectionAsset, Label: "Accumulated Depreciation"},
	{ID: "otherAssets", Section: model.SectionAsset, Label: "Other Assets"},

	// Liabilities
	{ID: "ap", Section: model.SectionLiability, Label: "Accounts Payable"},
	{ID: "creditCards", Section: model.SectionLiability, Label: "Credit Cards"},
	{ID: "accruedLiabilities", Section: model.SectionLiability, Label: "Accrued Liabilities"},
	{ID: "payrollLiabilities", Section: model.SectionLiability, Label: "Payroll Liabilities"},
	{ID: "salesTaxPayable", Section: model.SectionLiability, Label: "Sales Tax Payable"},
	{ID: "deferredRevenue", Section: model.SectionLiability, Label: "Deferred Revenue"},
	{ID: "lineOfCredit", Section: model.SectionLiability, Label: "Line of Credit"},
	{ID: "longTermDebt", Section: model.SectionLiability, Label: "Long-Term Debt"},
	{ID: "otherLiabilities", Section: model.SectionLiability, Label: "Other Liabilities"},

	// Equity
	{ID: "ownersEquity", Section: model.SectionEquity, Label: "Owner's Equity"},
	{ID: "ownerContributions", Section: model.SectionEquity, Label: "Owner Contributions"},
	{ID: "ownersDraw", Section: model.SectionEquity, Label: "Owner's Draw"},
	{ID: "retainedEarnings", Section: model.SectionEquity, Label: "Retained Earnings"},
}
