package background

import (
	"context"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"

	"github.com/doumi-inc/doumi-api/external/push"
	"github.com/doumi-inc/doumi-api/utils"
)

// PushLanguageCode is a mapping between the push provider's language code
// and our i18n language code
var PushLanguageCode = map[string]string{
	"ko": "ko",
	"en": "en",
}

// LocalizedMessage renders the heading and content of a notification type
// in every supported language. msgType addresses the
// `notification.<msgType>.{heading,content}` message pair; templateData
// fills the content template.
func LocalizedMessage(msgType string, templateData map[string]interface{}) (map[string]string, map[string]string, error) {
	headings := map[string]string{}
	contents := map[string]string{}

	for key, lang := range PushLanguageCode {
		loc := utils.NewLocalizer(lang)

		heading, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: fmt.Sprintf("notification.%s.heading", msgType),
		})
		if err != nil {
			return nil, nil, err
		}
		headings[key] = heading

		content, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID:    fmt.Sprintf("notification.%s.content", msgType),
			TemplateData: templateData,
		})
		if err != nil {
			return nil, nil, err
		}
		contents[key] = content
	}

	return headings, contents, nil
}

// NotifyAccountsByText submits one push request per batch of accounts with
// raw headings, contents and data
func (b *Background) NotifyAccountsByText(accountNumbers []string, headings, contents map[string]string, data map[string]interface{}) error {
	filters := []map[string]string{}
	for i, a := range accountNumbers {
		if i%100 == 0 {
			filters = append(filters, map[string]string{
				"field":    "tag",
				"key":      "account_number",
				"relation": "=",
				"value":    a,
			})
		} else {
			filters = append(filters,
				map[string]string{"operator": "OR"},
				map[string]string{
					"field":    "tag",
					"key":      "account_number",
					"relation": "=",
					"value":    a,
				})
		}
		if i%100 == 99 {
			req := &push.NotificationRequest{
				AppID:          viper.GetString("push.appid"),
				Headings:       headings,
				Contents:       contents,
				Filters:        filters,
				Data:           data,
				LocalChannelID: "important_alert",
			}
			if err := b.Push.SendNotification(context.Background(), req); err != nil {
				return err
			}
			filters = []map[string]string{}
		}
	}
	// send rest of notification
	if len(filters) == 0 {
		return nil
	}
	req := &push.NotificationRequest{
		AppID:          viper.GetString("push.appid"),
		Headings:       headings,
		Contents:       contents,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "important_alert",
	}
	return b.Push.SendNotification(context.Background(), req)
}
