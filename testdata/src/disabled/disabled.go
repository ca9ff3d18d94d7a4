// Package disabled contains patterns both rules report, for running with
// -availability=false -interpolation=false.
package disabled

import (
	"context"
	"fmt"
)

func background(ctx context.Context) {
	fmt.Println(context.Background())
}

func format(name string) string {
	return fmt.Sprintf("${name}", name)
}
