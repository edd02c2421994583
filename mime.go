package tinyhttp

import "strings"

// ContentTypeByExtension maps a file extension (with or without the
// leading dot, any case) to a content type. Unknown extensions map to
// application/octet-stream.
func ContentTypeByExtension(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ct, ok := mimeTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

var mimeTypes = map[string]string{
	"323":      "text/h323",
	"3g2":      "video/3gpp2",
	"3gp":      "video/3gpp",
	"7z":       "application/x-7z-compressed",
	"aac":      "audio/aac",
	"aaf":      "application/octet-stream",
	"abw":      "application/x-abiword",
	"ai":       "application/postscript",
	"aif":      "audio/aiff",
	"aifc":     "audio/aiff",
	"aiff":     "audio/aiff",
	"apk":      "application/vnd.android.package-archive",
	"appcache": "text/cache-manifest",
	"asf":      "video/x-ms-asf",
	"asm":      "text/plain",
	"asx":      "video/x-ms-asf",
	"atom":     "application/atom+xml",
	"au":       "audio/basic",
	"avi":      "video/x-msvideo",
	"avif":     "image/avif",
	"azw":      "application/vnd.amazon.ebook",
	"bat":      "application/x-msdownload",
	"bin":      "application/octet-stream",
	"bmp":      "image/x-ms-bmp",
	"bz2":      "application/x-bzip2",
	"c":        "text/plain",
	"cab":      "application/vnd.ms-cab-compressed",
	"cer":      "application/x-x509-ca-cert",
	"class":    "application/java-vm",
	"conf":     "text/plain",
	"cpp":      "text/plain",
	"crt":      "application/x-x509-ca-cert",
	"cs":       "text/plain",
	"csh":      "application/x-csh",
	"css":      "text/css",
	"csv":      "text/csv",
	"cur":      "application/octet-stream",
	"dat":      "application/octet-stream",
	"deb":      "application/octet-stream",
	"der":      "application/x-x509-ca-cert",
	"dll":      "application/octet-stream",
	"dmg":      "application/octet-stream",
	"doc":      "application/msword",
	"docm":     "application/vnd.ms-word.document.macroEnabled.12",
	"docx":     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"dot":      "application/msword",
	"dotm":     "application/vnd.ms-word.template.macroEnabled.12",
	"dotx":     "application/vnd.openxmlformats-officedocument.wordprocessingml.template",
	"dtd":      "application/xml-dtd",
	"dvi":      "application/x-dvi",
	"ear":      "application/java-archive",
	"eml":      "message/rfc822",
	"eot":      "application/vnd.ms-fontobject",
	"eps":      "application/postscript",
	"epub":     "application/epub+zip",
	"exe":      "application/octet-stream",
	"flac":     "audio/flac",
	"flv":      "video/x-flv",
	"gif":      "image/gif",
	"go":       "text/plain",
	"gz":       "application/gzip",
	"h":        "text/plain",
	"hqx":      "application/mac-binhex40",
	"htc":      "text/x-component",
	"htm":      "text/html",
	"html":     "text/html",
	"ical":     "text/calendar",
	"ics":      "text/calendar",
	"ico":      "image/x-icon",
	"ief":      "image/ief",
	"img":      "application/octet-stream",
	"iso":      "application/octet-stream",
	"jad":      "text/vnd.sun.j2me.app-descriptor",
	"jar":      "application/java-archive",
	"java":     "text/plain",
	"jng":      "image/x-jng",
	"jnlp":     "application/x-java-jnlp-file",
	"jpeg":     "image/jpeg",
	"jpg":      "image/jpeg",
	"js":       "application/javascript",
	"json":     "application/json",
	"jsonld":   "application/ld+json",
	"kar":      "audio/midi",
	"kml":      "application/vnd.google-earth.kml+xml",
	"kmz":      "application/vnd.google-earth.kmz",
	"latex":    "application/x-latex",
	"log":      "text/plain",
	"m3u":      "audio/x-mpegurl",
	"m3u8":     "application/vnd.apple.mpegurl",
	"m4a":      "audio/x-m4a",
	"m4v":      "video/x-m4v",
	"man":      "application/x-troff-man",
	"markdown": "text/markdown",
	"md":       "text/markdown",
	"mdb":      "application/x-msaccess",
	"mid":      "audio/midi",
	"midi":     "audio/midi",
	"mjs":      "application/javascript",
	"mml":      "text/mathml",
	"mng":      "video/x-mng",
	"mov":      "video/quicktime",
	"mp2":      "audio/mpeg",
	"mp3":      "audio/mpeg",
	"mp4":      "video/mp4",
	"mpeg":     "video/mpeg",
	"mpg":      "video/mpeg",
	"mpga":     "audio/mpeg",
	"mpkg":     "application/vnd.apple.installer+xml",
	"msg":      "application/vnd.ms-outlook",
	"msi":      "application/octet-stream",
	"nc":       "application/x-netcdf",
	"odb":      "application/vnd.oasis.opendocument.database",
	"odc":      "application/vnd.oasis.opendocument.chart",
	"odf":      "application/vnd.oasis.opendocument.formula",
	"odg":      "application/vnd.oasis.opendocument.graphics",
	"odi":      "application/vnd.oasis.opendocument.image",
	"odm":      "application/vnd.oasis.opendocument.text-master",
	"odp":      "application/vnd.oasis.opendocument.presentation",
	"ods":      "application/vnd.oasis.opendocument.spreadsheet",
	"odt":      "application/vnd.oasis.opendocument.text",
	"oga":      "audio/ogg",
	"ogg":      "audio/ogg",
	"ogv":      "video/ogg",
	"ogx":      "application/ogg",
	"otf":      "font/otf",
	"otg":      "application/vnd.oasis.opendocument.graphics-template",
	"oth":      "application/vnd.oasis.opendocument.text-web",
	"otp":      "application/vnd.oasis.opendocument.presentation-template",
	"ots":      "application/vnd.oasis.opendocument.spreadsheet-template",
	"ott":      "application/vnd.oasis.opendocument.text-template",
	"p12":      "application/x-pkcs12",
	"p7b":      "application/x-pkcs7-certificates",
	"p7c":      "application/pkcs7-mime",
	"pbm":      "image/x-portable-bitmap",
	"pdf":      "application/pdf",
	"pem":      "application/x-x509-ca-cert",
	"pfx":      "application/x-pkcs12",
	"pgm":      "image/x-portable-graymap",
	"php":      "application/x-httpd-php",
	"pl":       "application/x-perl",
	"pm":       "application/x-perl",
	"png":      "image/png",
	"pnm":      "image/x-portable-anymap",
	"pot":      "application/vnd.ms-powerpoint",
	"potm":     "application/vnd.ms-powerpoint.template.macroEnabled.12",
	"potx":     "application/vnd.openxmlformats-officedocument.presentationml.template",
	"ppa":      "application/vnd.ms-powerpoint",
	"ppam":     "application/vnd.ms-powerpoint.addin.macroEnabled.12",
	"ppm":      "image/x-portable-pixmap",
	"pps":      "application/vnd.ms-powerpoint",
	"ppsm":     "application/vnd.ms-powerpoint.slideshow.macroEnabled.12",
	"ppsx":     "application/vnd.openxmlformats-officedocument.presentationml.slideshow",
	"ppt":      "application/vnd.ms-powerpoint",
	"pptm":     "application/vnd.ms-powerpoint.presentation.macroEnabled.12",
	"pptx":     "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"ps":       "application/postscript",
	"psd":      "image/vnd.adobe.photoshop",
	"pub":      "application/x-mspublisher",
	"py":       "text/plain",
	"ra":       "audio/x-realaudio",
	"rar":      "application/x-rar-compressed",
	"ras":      "image/x-cmu-raster",
	"rb":       "text/plain",
	"rdf":      "application/rdf+xml",
	"rgb":      "image/x-rgb",
	"rpm":      "application/x-redhat-package-manager",
	"rss":      "application/rss+xml",
	"rtf":      "application/rtf",
	"rtx":      "text/richtext",
	"run":      "application/x-makeself",
	"sgm":      "text/sgml",
	"sgml":     "text/sgml",
	"sh":       "application/x-sh",
	"shtml":    "text/html",
	"sit":      "application/x-stuffit",
	"sldm":     "application/vnd.ms-powerpoint.slide.macroEnabled.12",
	"sldx":     "application/vnd.openxmlformats-officedocument.presentationml.slide",
	"snd":      "audio/basic",
	"sql":      "text/plain",
	"svg":      "image/svg+xml",
	"svgz":     "image/svg+xml",
	"swf":      "application/x-shockwave-flash",
	"tar":      "application/x-tar",
	"tcl":      "application/x-tcl",
	"tex":      "application/x-tex",
	"texi":     "application/x-texinfo",
	"texinfo":  "application/x-texinfo",
	"tgz":      "application/gzip",
	"tif":      "image/tiff",
	"tiff":     "image/tiff",
	"toml":     "text/plain",
	"ts":       "video/mp2t",
	"tsv":      "text/tab-separated-values",
	"ttf":      "font/ttf",
	"txt":      "text/plain",
	"vcard":    "text/vcard",
	"vcf":      "text/vcard",
	"vsd":      "application/vnd.visio",
	"vsdx":     "application/vnd.ms-visio.drawing",
	"vss":      "application/vnd.visio",
	"vst":      "application/vnd.visio",
	"wad":      "application/x-doom",
	"war":      "application/java-archive",
	"wav":      "audio/wav",
	"wax":      "audio/x-ms-wax",
	"wbmp":     "image/vnd.wap.wbmp",
	"webm":     "video/webm",
	"webp":     "image/webp",
	"wks":      "application/vnd.ms-works",
	"wma":      "audio/x-ms-wma",
	"wmf":      "application/x-msmetafile",
	"wml":      "text/vnd.wap.wml",
	"wmlc":     "application/vnd.wap.wmlc",
	"wmv":      "video/x-ms-wmv",
	"wmx":      "video/x-ms-wmx",
	"woff":     "font/woff",
	"woff2":    "font/woff2",
	"wps":      "application/vnd.ms-works",
	"wri":      "application/x-mswrite",
	"wsdl":     "application/wsdl+xml",
	"xbm":      "image/x-xbitmap",
	"xht":      "application/xhtml+xml",
	"xhtml":    "application/xhtml+xml",
	"xla":      "application/vnd.ms-excel",
	"xlam":     "application/vnd.ms-excel.addin.macroEnabled.12",
	"xls":      "application/vnd.ms-excel",
	"xlsb":     "application/vnd.ms-excel.sheet.binary.macroEnabled.12",
	"xlsm":     "application/vnd.ms-excel.sheet.macroEnabled.12",
	"xlsx":     "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"xlt":      "application/vnd.ms-excel",
	"xltm":     "application/vnd.ms-excel.template.macroEnabled.12",
	"xltx":     "application/vnd.openxmlformats-officedocument.spreadsheetml.template",
	"xml":      "text/xml",
	"xpi":      "application/x-xpinstall",
	"xpm":      "image/x-xpixmap",
	"xps":      "application/vnd.ms-xpsdocument",
	"xsl":      "application/xml",
	"xslt":     "application/xslt+xml",
	"xspf":     "application/xspf+xml",
	"xwd":      "image/x-xwindowdump",
	"xz":       "application/x-xz",
	"yaml":     "text/plain",
	"yml":      "text/plain",
	"zip":      "application/zip",
	"zst":      "application/zstd",
}
