package paths

const Base string = "/"
