package surface

import (
	"context"
	"encoding/json"
	"fmt"
)

// bannerLabels are the button captions consent and cookie overlays
// typically carry on the widget's host page. Matching is case
// insensitive against the trimmed visible text.
var bannerLabels = []string{"accept", "i agree", "agree", "ok", "got it"}

// DismissBanners clicks away consent overlays that would otherwise sit
// on top of the widget's form controls. It is best effort: a page with
// no banner returns zero with no error.
func DismissBanners(ctx context.Context, s Surface) (int, error) {
	var clicked int
	if err := s.Evaluate(ctx, dismissBannersJS(), &clicked); err != nil {
		return 0, err
	}
	return clicked, nil
}

func dismissBannersJS() string {
	labels, _ := json.Marshal(bannerLabels)
	return fmt.Sprintf(`(() => {
	const labels = %s;
	const nodes = document.querySelectorAll('button, input[type="button"], input[type="submit"], a[role="button"]');
	let clicked = 0;
	for (const el of nodes) {
		const text = (el.value || el.textContent || "").trim().toLowerCase();
		if (labels.includes(text)) {
			el.click();
			clicked++;
		}
	}
	return clicked;
})()`, labels)
}
