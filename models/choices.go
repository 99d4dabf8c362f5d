package models

// choice is a stored code paired with its human-readable label.
type choice struct {
	code  string
	label string
}

func labelFor(choices []choice, code string) (string, bool) {
	for _, c := range choices {
		if c.code == code {
			return c.label, true
		}
	}
	return "", false
}

func codesOf(choices []choice) []string {
	codes := make([]string, len(choices))
	for i, c := range choices {
		codes[i] = c.code
	}
	return codes
}

// ServiceType is the kind of work requested through the service request form.
type ServiceType string

const (
	ServiceWeb        ServiceType = "web"
	ServiceMobile     ServiceType = "mobile"
	ServiceAPI        ServiceType = "api"
	ServiceDesign     ServiceType = "design"
	ServiceConsulting ServiceType = "consulting"
	ServiceDevOps     ServiceType = "devops"
)

var serviceTypeChoices = []choice{
	{string(ServiceWeb), "Web Development"},
	{string(ServiceMobile), "Mobile Development"},
	{string(ServiceAPI), "API Development"},
	{string(ServiceDesign), "UI/UX Design"},
	{string(ServiceConsulting), "Consulting"},
	{string(ServiceDevOps), "DevOps & Deployment"},
}

func (s ServiceType) Valid() bool {
	_, ok := labelFor(serviceTypeChoices, string(s))
	return ok
}

// Label returns the display label, or the raw code when it is unknown.
func (s ServiceType) Label() string {
	if l, ok := labelFor(serviceTypeChoices, string(s)); ok {
		return l
	}
	return string(s)
}

func (ServiceType) Choices() []string { return codesOf(serviceTypeChoices) }

// Timeline is the optional preferred timeline of a service request.
type Timeline string

const (
	TimelineASAP       Timeline = "asap"
	Timeline2To4Weeks  Timeline = "2-4 weeks"
	Timeline1To2Months Timeline = "1-2 months"
	Timeline2To3Months Timeline = "2-3 months"
	Timeline3PlusMonth Timeline = "3+ months"
	TimelineFlexible   Timeline = "flexible"
)

var timelineChoices = []choice{
	{string(TimelineASAP), "As soon as possible"},
	{string(Timeline2To4Weeks), "2-4 weeks"},
	{string(Timeline1To2Months), "1-2 months"},
	{string(Timeline2To3Months), "2-3 months"},
	{string(Timeline3PlusMonth), "3+ months"},
	{string(TimelineFlexible), "Flexible"},
}

func (t Timeline) Valid() bool {
	_, ok := labelFor(timelineChoices, string(t))
	return ok
}

// Label returns "Not specified" for blank or unknown timelines.
func (t Timeline) Label() string {
	if l, ok := labelFor(timelineChoices, string(t)); ok {
		return l
	}
	return NotSpecified
}

func (Timeline) Choices() []string { return codesOf(timelineChoices) }

// BudgetRange is the optional budget bracket of a service request.
type BudgetRange string

const (
	BudgetUnder1k  BudgetRange = "Under $1,000"
	Budget1kTo2500 BudgetRange = "$1,000 - $2,500"
	Budget2500To5k BudgetRange = "$2,500 - $5,000"
	Budget5kTo10k  BudgetRange = "$5,000 - $10,000"
	BudgetOver10k  BudgetRange = "$10,000+"
	BudgetNotSure  BudgetRange = "not-sure"
)

// NotSpecified is rendered for optional choices left blank.
const NotSpecified = "Not specified"

var budgetChoices = []choice{
	{string(BudgetUnder1k), "Under $1,000"},
	{string(Budget1kTo2500), "$1,000 - $2,500"},
	{string(Budget2500To5k), "$2,500 - $5,000"},
	{string(Budget5kTo10k), "$5,000 - $10,000"},
	{string(BudgetOver10k), "$10,000+"},
	{string(BudgetNotSure), "Not sure / Need quote"},
}

func (b BudgetRange) Valid() bool {
	_, ok := labelFor(budgetChoices, string(b))
	return ok
}

// Label returns "Not specified" for blank or unknown budgets.
func (b BudgetRange) Label() string {
	if l, ok := labelFor(budgetChoices, string(b)); ok {
		return l
	}
	return NotSpecified
}

func (BudgetRange) Choices() []string { return codesOf(budgetChoices) }

// RequestStatus tracks operator handling of a service request.
type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestReviewed   RequestStatus = "reviewed"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestCancelled  RequestStatus = "cancelled"
)

var requestStatusChoices = []choice{
	{string(RequestPending), "Pending"},
	{string(RequestReviewed), "Reviewed"},
	{string(RequestInProgress), "In Progress"},
	{string(RequestCompleted), "Completed"},
	{string(RequestCancelled), "Cancelled"},
}

func (s RequestStatus) Valid() bool {
	_, ok := labelFor(requestStatusChoices, string(s))
	return ok
}

func (s RequestStatus) Label() string {
	if l, ok := labelFor(requestStatusChoices, string(s)); ok {
		return l
	}
	return string(s)
}

func (RequestStatus) Choices() []string { return codesOf(requestStatusChoices) }

// MessageStatus tracks operator handling of a contact message.
type MessageStatus string

const (
	MessageNew     MessageStatus = "new"
	MessageRead    MessageStatus = "read"
	MessageReplied MessageStatus = "replied"
)

var messageStatusChoices = []choice{
	{string(MessageNew), "New"},
	{string(MessageRead), "Read"},
	{string(MessageReplied), "Replied"},
}

func (s MessageStatus) Valid() bool {
	_, ok := labelFor(messageStatusChoices, string(s))
	return ok
}

func (s MessageStatus) Label() string {
	if l, ok := labelFor(messageStatusChoices, string(s)); ok {
		return l
	}
	return string(s)
}

func (MessageStatus) Choices() []string { return codesOf(messageStatusChoices) }

// ProjectStatus controls public visibility of a project. Only published
// projects are served by the read API.
type ProjectStatus string

const (
	ProjectDraft     ProjectStatus = "draft"
	ProjectPublished ProjectStatus = "published"
	ProjectArchived  ProjectStatus = "archived"
)

var projectStatusChoices = []choice{
	{string(ProjectDraft), "Draft"},
	{string(ProjectPublished), "Published"},
	{string(ProjectArchived), "Archived"},
}

func (s ProjectStatus) Valid() bool {
	_, ok := labelFor(projectStatusChoices, string(s))
	return ok
}

func (s ProjectStatus) Label() string {
	if l, ok := labelFor(projectStatusChoices, string(s)); ok {
		return l
	}
	return string(s)
}

func (ProjectStatus) Choices() []string { return codesOf(projectStatusChoices) }

// SkillCategory buckets skills for the grouped listing.
type SkillCategory string

const (
	CategoryFrontend SkillCategory = "frontend"
	CategoryBackend  SkillCategory = "backend"
	CategoryMobile   SkillCategory = "mobile"
	CategoryDatabase SkillCategory = "database"
	CategoryDevOps   SkillCategory = "devops"
	CategoryDesign   SkillCategory = "design"
	CategoryOther    SkillCategory = "other"
)

var skillCategoryChoices = []choice{
	{string(CategoryFrontend), "Frontend"},
	{string(CategoryBackend), "Backend"},
	{string(CategoryMobile), "Mobile"},
	{string(CategoryDatabase), "Database"},
	{string(CategoryDevOps), "DevOps"},
	{string(CategoryDesign), "Design"},
	{string(CategoryOther), "Other"},
}

func (c SkillCategory) Valid() bool {
	_, ok := labelFor(skillCategoryChoices, string(c))
	return ok
}

func (c SkillCategory) Label() string {
	if l, ok := labelFor(skillCategoryChoices, string(c)); ok {
		return l
	}
	return string(c)
}

func (SkillCategory) Choices() []string { return codesOf(skillCategoryChoices) }

// Platform identifies a social network for a social link.
type Platform string

const (
	PlatformGitHub    Platform = "github"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformEmail     Platform = "email"
	PlatformWebsite   Platform = "website"
	PlatformOther     Platform = "other"
)

var platformChoices = []choice{
	{string(PlatformGitHub), "GitHub"},
	{string(PlatformLinkedIn), "LinkedIn"},
	{string(PlatformTwitter), "Twitter"},
	{string(PlatformFacebook), "Facebook"},
	{string(PlatformInstagram), "Instagram"},
	{string(PlatformYouTube), "YouTube"},
	{string(PlatformEmail), "Email"},
	{string(PlatformWebsite), "Website"},
	{string(PlatformOther), "Other"},
}

func (p Platform) Valid() bool {
	_, ok := labelFor(platformChoices, string(p))
	return ok
}

func (p Platform) Label() string {
	if l, ok := labelFor(platformChoices, string(p)); ok {
		return l
	}
	return string(p)
}

func (Platform) Choices() []string { return codesOf(platformChoices) }
