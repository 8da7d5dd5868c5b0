package templates

// NavItem is a top-level navigation entry of the sidebar.
type NavItem struct {
	Label    string
	Href     string
	IsActive bool
}

// SidebarData holds the navigation shown on every full page.
type SidebarData struct {
	ActivePath string
	Items      []NavItem
}

// ScopeNavItem is one selectable scope of the scope browser.
type ScopeNavItem struct {
	ID       string
	Code     string
	Name     string
	IsActive bool
}

// StatusTab is one status filter tab with its total.
type StatusTab struct {
	Filter   string
	Label    string
	Count    int
	IsActive bool
}

// RefLink is one drawing or spec reference group of a bid item.
type RefLink struct {
	Category string
	Title    string // items joined with ", "
	Count    int
	HasItems bool
}

// BidItemRow is one bid item row of the accordion.
type BidItemRow struct {
	ItemNumber  string
	Description string
	StatusIcon  string
	DrawingRefs []RefLink
	SpecRefs    []RefLink
	Hidden      bool
}

// CategorySection is a collapsible category with its rows.
type CategorySection struct {
	Name      string
	ItemCount int
	Expanded  bool
	Rows      []BidItemRow
}

// CategoryOption is one checkbox of the category filter dropdown.
type CategoryOption struct {
	Name    string
	Checked bool
}

// ScopesPageData is everything the scope browser renders.
type ScopesPageData struct {
	Scopes          []ScopeNavItem
	ScopeID         string
	ScopeName       string
	Tabs            []StatusTab
	Categories      []CategorySection
	CategoryOptions []CategoryOption
	SelectAllState  string // checked, unchecked or indeterminate
	NoItems         bool
	LoadError       string
}

// TabItem is a tab or toggle button of the GRPS page.
type TabItem struct {
	Value    string
	Label    string
	IsActive bool
}

// ViewKind selects the column set of a GRPS table.
type ViewKind string

const (
	ViewBidItems      ViewKind = "bid-items"
	ViewContractItems ViewKind = "contract-items"
	ViewScopeItems    ViewKind = "scope-items"
)

// Columns returns the header labels of a table kind.
func (k ViewKind) Columns() []string {
	if k == ViewScopeItems {
		return []string{"Scope Item ID", "Scope Item Name", "Derived From Contract Items", "Sheets", "Specs"}
	}
	return []string{"ID", "Description", "Sheets", "Specs"}
}

func (k ViewKind) emptyMessage() string {
	switch k {
	case ViewContractItems:
		return "No contract items found"
	case ViewScopeItems:
		return "No scope items found"
	}
	return "No bid items found"
}

// ContractBadge is a derived contract item id with its tooltip text.
type ContractBadge struct {
	ID      string
	Tooltip string
}

// GRPSRow is one row of any GRPS table. Badges are only used by scope items.
type GRPSRow struct {
	ID          string
	Description string
	Badges      []ContractBadge
	Sheets      string
	Specs       string
}

// GRPSTableView is a table of one kind.
type GRPSTableView struct {
	Kind ViewKind
	Rows []GRPSRow
}

// GRPSPageData is everything the GRPS MEP page renders.
type GRPSPageData struct {
	Disciplines []TabItem
	Views       []TabItem
	Discipline  string
	Loaded      bool
	LoadError   string
	Table       GRPSTableView
}

// PackageGroupView is one package group row.
type PackageGroupView struct {
	Name  string
	Specs []string
}

// PackageDisciplineView is the package mapping table of one discipline.
type PackageDisciplineView struct {
	Title  string
	Groups []PackageGroupView
}

// PackageMappingData is everything the package mapping page renders.
type PackageMappingData struct {
	Disciplines []PackageDisciplineView
	LoadError   string
}
