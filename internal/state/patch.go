package state

import "github.com/investlens/investlens/internal/domain"

// ProfilePatch is a partial profile update; nil fields are left untouched.
type ProfilePatch struct {
	Name                   *string                `json:"name,omitempty"`
	Email                  *string                `json:"email,omitempty"`
	Phone                  *string                `json:"phone,omitempty"`
	Address                *string                `json:"address,omitempty"`
	BudgetMin              *float64               `json:"budgetMin,omitempty"`
	BudgetMax              *float64               `json:"budgetMax,omitempty"`
	RiskTolerance          *domain.RiskTolerance  `json:"riskTolerance,omitempty"`
	InvestmentGoal         *domain.InvestmentGoal `json:"investmentGoal,omitempty"`
	TimelineYears          *int                   `json:"timeline,omitempty"`
	PreferredLocations     *[]string              `json:"preferredLocations,omitempty"`
	PreferredPropertyTypes *[]string              `json:"preferredPropertyTypes,omitempty"`
}

func (p ProfilePatch) apply(dst *domain.InvestorProfile) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Email != nil {
		dst.Email = *p.Email
	}
	if p.Phone != nil {
		dst.Phone = *p.Phone
	}
	if p.Address != nil {
		dst.Address = *p.Address
	}
	if p.BudgetMin != nil {
		dst.BudgetMin = *p.BudgetMin
	}
	if p.BudgetMax != nil {
		dst.BudgetMax = *p.BudgetMax
	}
	if p.RiskTolerance != nil {
		dst.RiskTolerance = *p.RiskTolerance
	}
	if p.InvestmentGoal != nil {
		dst.InvestmentGoal = *p.InvestmentGoal
	}
	if p.TimelineYears != nil {
		dst.TimelineYears = *p.TimelineYears
	}
	if p.PreferredLocations != nil {
		dst.PreferredLocations = *p.PreferredLocations
	}
	if p.PreferredPropertyTypes != nil {
		dst.PreferredPropertyTypes = *p.PreferredPropertyTypes
	}
}

// SettingsPatch is a partial settings update. The nested toggle groups are
// themselves patches, so setting notifications.sms leaves email and push
// alone.
type SettingsPatch struct {
	Language      *string                 `json:"language,omitempty"`
	Theme         *string                 `json:"theme,omitempty"`
	Notifications *NotificationPrefsPatch `json:"notifications,omitempty"`
	Privacy       *PrivacyPrefsPatch      `json:"privacy,omitempty"`
}

type NotificationPrefsPatch struct {
	Email *bool `json:"email,omitempty"`
	Push  *bool `json:"push,omitempty"`
	SMS   *bool `json:"sms,omitempty"`
}

type PrivacyPrefsPatch struct {
	ShareData *bool `json:"shareData,omitempty"`
	Analytics *bool `json:"analytics,omitempty"`
	Marketing *bool `json:"marketing,omitempty"`
}

func (p SettingsPatch) apply(dst *domain.Settings) {
	if p.Language != nil {
		dst.Language = *p.Language
	}
	if p.Theme != nil {
		dst.Theme = *p.Theme
	}
	if p.Notifications != nil {
		if p.Notifications.Email != nil {
			dst.Notifications.Email = *p.Notifications.Email
		}
		if p.Notifications.Push != nil {
			dst.Notifications.Push = *p.Notifications.Push
		}
		if p.Notifications.SMS != nil {
			dst.Notifications.SMS = *p.Notifications.SMS
		}
	}
	if p.Privacy != nil {
		if p.Privacy.ShareData != nil {
			dst.Privacy.ShareData = *p.Privacy.ShareData
		}
		if p.Privacy.Analytics != nil {
			dst.Privacy.Analytics = *p.Privacy.Analytics
		}
		if p.Privacy.Marketing != nil {
			dst.Privacy.Marketing = *p.Privacy.Marketing
		}
	}
}
