// Package catalog holds the compiled-in list of images imgfetch downloads.
package catalog

// OutputDir is where images are written, relative to the working directory
const OutputDir = "images"

var imageURLs = []string{
	// Hero image
	"https://images.unsplash.com/photo-1504674900247-0877039348bf?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",

	// Category images
	"https://images.unsplash.com/photo-1513104890138-7c749659a591?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
	"https://images.unsplash.com/photo-1559847844-5315695dadae?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
	"https://images.unsplash.com/photo-1512621776951-a57141f2eefd?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
	"https://images.unsplash.com/photo-1565557623262-b51c2513a641?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",

	// Food item images
	"https://images.unsplash.com/photo-1604382355076-af4b0eb60143?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
	"https://images.unsplash.com/photo-1568901346375-23c9450c58cd?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
	"https://images.unsplash.com/photo-1546793665-c74683f339c1?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
	"https://images.unsplash.com/photo-1579871494447-9811cf80d66c?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
	"https://images.unsplash.com/photo-1612874742237-6526221588e3?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
	"https://images.unsplash.com/photo-1601050690597-df0568f70950?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",

	// Testimonial avatar
	"https://randomuser.me/api/portraits/women/32.jpg",

	// Mobile app image
	"https://www.freepngimg.com/thumb/smartphone/67060-phone-mobile-app-android-google-play-store.png",
}

// ImageURLs returns the download list in order. The slice is a copy.
func ImageURLs() []string {
	out := make([]string, len(imageURLs))
	copy(out, imageURLs)
	return out
}
